package method

type Method uint8

const (
	Unknown Method = iota
	GET
	POST
	PUT
	DELETE

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. Arrays indexed by Method must therefore be Count+1 long
	Count = iota - 1
)

// List contains all the supported HTTP methods, sorted by their integer value. Unknown
// is not included.
var List = []Method{GET, POST, PUT, DELETE}

// Parse returns the method matching the token exactly. Anything unrecognized (including
// lower-cased variants) results in Unknown.
func Parse(str string) Method {
	switch str {
	case "GET":
		return GET
	case "POST":
		return POST
	case "PUT":
		return PUT
	case "DELETE":
		return DELETE
	}

	return Unknown
}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	case PUT:
		return "PUT"
	case DELETE:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}
