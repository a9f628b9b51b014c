package domain

// Response is the closed set of outcomes a repository operation can report.
// Store failures travel on the error return instead, never through Response.
type Response int

const (
	ResponseCreated Response = iota
	ResponseUpdated
	ResponseDeleted
	ResponseNotFound
	ResponseConflict
	ResponseBadRequest
)

func (r Response) String() string {
	switch r {
	case ResponseCreated:
		return "Created"
	case ResponseUpdated:
		return "Updated"
	case ResponseDeleted:
		return "Deleted"
	case ResponseNotFound:
		return "NotFound"
	case ResponseConflict:
		return "Conflict"
	case ResponseBadRequest:
		return "BadRequest"
	}
	return "Unknown"
}
