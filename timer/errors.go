package timer

import "github.com/ayoisaiah/ecofocus/internal/apperr"

var errParseSessionCmd = &apperr.Error{
	Message: "unable to parse session_cmd option",
}
