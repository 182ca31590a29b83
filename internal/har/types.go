package har

// HAR represents the HTTP Archive format as per the HAR 1.2 spec.
type HAR struct {
	Log *Log `json:"log"`
}

// Log contains the HTTP archive data. Entry order is significant and is
// preserved through filtering and prompt construction.
type Log struct {
	Version string   `json:"version"`
	Creator *Creator `json:"creator,omitempty"`
	Entries []*Entry `json:"entries"`
	Comment string   `json:"comment,omitempty"`
}

// Creator describes the application that created the archive
type Creator struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Comment string `json:"comment,omitempty"`
}

// Entry describes a single HTTP request/response pair
type Entry struct {
	StartedDateTime string    `json:"startedDateTime,omitempty"`
	Time            float64   `json:"time"`
	Request         *Request  `json:"request"`
	Response        *Response `json:"response"`
	Comment         string    `json:"comment,omitempty"`
}

// Request describes an HTTP request
type Request struct {
	Method      string         `json:"method"`
	URL         string         `json:"url"`
	HTTPVersion string         `json:"httpVersion,omitempty"`
	Headers     []*Header      `json:"headers"`
	QueryString []*QueryString `json:"queryString,omitempty"`
	PostData    *PostData      `json:"postData,omitempty"`
	Comment     string         `json:"comment,omitempty"`
}

// Response describes an HTTP response
type Response struct {
	Status      int       `json:"status"`
	StatusText  string    `json:"statusText,omitempty"`
	HTTPVersion string    `json:"httpVersion,omitempty"`
	Headers     []*Header `json:"headers"`
	Content     *Content  `json:"content,omitempty"`
	Comment     string    `json:"comment,omitempty"`
}

// Header represents an HTTP header as a name-value pair
type Header struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Comment string `json:"comment,omitempty"`
}

// QueryString represents a URL query parameter
type QueryString struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Comment string `json:"comment,omitempty"`
}

// PostData describes POST request data
type PostData struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// Content describes the response body content
type Content struct {
	Size     int    `json:"size"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text,omitempty"`
	Comment  string `json:"comment,omitempty"`
}
