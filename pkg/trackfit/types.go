package trackfit

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AuthTokenHeader carries the session token on authorized calls.
const AuthTokenHeader = "X-Auth-Token"

// DefaultErrorMessage is used when a failed response has an empty body.
const DefaultErrorMessage = "Request failed"

// APIError is a non-2xx response from the TrackFit API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trackfit API error %d: %s", e.StatusCode, e.Message)
}

// StartSessionRequest is the body for POST /auth/start.
type StartSessionRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StartSessionResponse is returned by POST /auth/start.
type StartSessionResponse struct {
	UserID    ID     `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AuthToken string `json:"authToken"`
}

// OverviewStats is returned by GET /stats/overview. Absent numbers decode as 0.
type OverviewStats struct {
	CurrentStreakDays         int     `json:"currentStreakDays"`
	RoutineConsistencyPercent float64 `json:"routineConsistencyPercent"`
	TotalWorkoutsLogged       int     `json:"totalWorkoutsLogged"`
	AverageDurationMinutes    float64 `json:"averageDurationMinutes"`
}

// RoutineTask is a routine task as stored by the backend.
type RoutineTask struct {
	ID          ID      `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	TargetDate  *string `json:"targetDate"`
	Completed   bool    `json:"completed"`
}

// CreateRoutineRequest is the body for POST /routines. Nil fields are sent as null.
type CreateRoutineRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	TargetDate  *string `json:"targetDate"`
}

// ID is an identifier the backend may send as a JSON string or number.
type ID string

// UnmarshalJSON accepts "abc", 123 and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }
