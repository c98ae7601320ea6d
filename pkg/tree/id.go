package tree

import "sync/atomic"

// WidgetID is the process-unique, stable identity of one tree node. Ids are
// assigned at insertion from a process-wide counter and never reused while
// the node lives. The zero value never names a live node.
type WidgetID uint64

var idCounter atomic.Uint64

func nextID() WidgetID {
	return WidgetID(idCounter.Add(1))
}
