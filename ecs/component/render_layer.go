package component

// RenderLayer orders sprites back to front by Index. Equal indices draw in
// creation order.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
