package pipeline

// Context carries the statement-level running state threaded through
// every page: once-per-statement boundary tracking and the period year
// recovered from the cover page. One Context lives exactly as long as
// one statement parse; nothing is shared across statements.
type Context struct {
	Year       int  // statement period start year; 0 = unknown
	InTable    bool // between the first-page and last-page markers
	HeaderSeen bool // a StartOnce boundary has already fired
}
