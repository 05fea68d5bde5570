// Car manager types live here so CarMgr can have method receivers in car_mgr.go.
package elev

import "liftsim/src/dispatcher"

// CarCmd is one operation run against the dispatcher by the manager goroutine.
type CarCmd struct {
	Exec func(d *dispatcher.Dispatcher)
}

// CarMgr owns the dispatcher and serializes its access.
type CarMgr struct {
	cmds chan CarCmd
	done chan struct{}
}
