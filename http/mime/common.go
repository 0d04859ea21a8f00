package mime

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	XML         MIME = "text/xml"
	JSON        MIME = "application/json"
	CSS         MIME = "text/css"
	JS          MIME = "text/javascript"
)
