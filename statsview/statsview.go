// This file is part of Backbuffer.
//
// Backbuffer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Backbuffer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Backbuffer.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/macdoom/backbuffer/logger"
)

// Available returns true if the program was built with the statsview tag.
func Available() bool {
	return true
}

// Launch starts the statistics server in a new goroutine. It returns the URL
// of the charts and a function that stops the server.
func Launch(addr string) (string, func(), error) {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()

	go func() {
		mgr.Start()
	}()

	url := fmt.Sprintf("http://%s%s", addr, urlPath)
	logger.Logf(logger.Allow, "statsview", "serving at %s", url)

	return url, mgr.Stop, nil
}
