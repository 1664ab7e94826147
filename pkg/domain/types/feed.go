package types

type (
	FeedURL       string
	FeedBridgeURL string
)

func (x FeedURL) String() string       { return string(x) }
func (x FeedBridgeURL) String() string { return string(x) }
