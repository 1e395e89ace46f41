package quotes

// RawQuote is one observed feed line, fields kept as read. The four quote
// fields (Bid, Ask, UnderBid, UnderAsk) hold numeric strings that may be
// empty or malformed until FillGaps has run.
type RawQuote struct {
	Description string
	Strike      string
	Kind        string
	Bid         string
	Ask         string
	UnderBid    string
	UnderAsk    string
	CreatedAt   string
}
