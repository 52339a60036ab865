package uber

// endpoints defines all API endpoint paths, relative to the version segment.
// Using a struct ensures type safety and enables IDE autocompletion.
var endpoints = struct {
	Requests   string
	Promotions string
	Me         string
	History    string
}{
	Requests:   "/requests",
	Promotions: "/promotions",
	Me:         "/me",
	History:    "/history",
}
