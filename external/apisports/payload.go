package apisports

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// envelope is the outer object shared by every api-sports endpoint. Response is kept raw
// because its shape differs per endpoint (array for standings, object for statistics).
type envelope struct {
	Errors   sonic.NoCopyRawMessage `json:"errors"`
	Response sonic.NoCopyRawMessage `json:"response"`
}

func (e envelope) hasResponse() bool {
	trimmed := bytes.TrimSpace(e.Response)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false
	}
	return !bytes.Equal(trimmed, []byte("[]")) && !bytes.Equal(trimmed, []byte("{}"))
}

// providerErrors flattens the "errors" member, which is [] when empty and an object
// keyed by field otherwise.
func (e envelope) providerErrors() string {
	trimmed := bytes.TrimSpace(e.Errors)
	if len(trimmed) == 0 {
		return ""
	}

	var decoded any
	if err := sonic.Unmarshal(trimmed, &decoded); err != nil {
		return ""
	}

	parts := make([]string, 0, 2)
	switch typed := decoded.(type) {
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s: %v", key, typed[key]))
		}
	case []any:
		for _, item := range typed {
			parts = append(parts, fmt.Sprint(item))
		}
	}
	return strings.Join(parts, "; ")
}

// flexInt accepts a JSON number, a numeric string or null. Anything else decodes to 0
// instead of failing the surrounding document.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	*f = flexInt(parseLooseInt(data))
	return nil
}

func parseLooseInt(data []byte) int {
	text := strings.TrimSpace(string(data))
	text = strings.Trim(text, `"`)
	text = strings.TrimSpace(text)
	if text == "" || text == "null" {
		return 0
	}
	if v, err := strconv.Atoi(text); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return int(v)
	}
	return 0
}

// flexString accepts a JSON string or number; other values decode to "".
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		*f = ""
	case trimmed[0] == '"':
		var s string
		if err := sonic.Unmarshal(trimmed, &s); err != nil {
			*f = ""
			return nil
		}
		*f = flexString(s)
	case trimmed[0] == '-' || (trimmed[0] >= '0' && trimmed[0] <= '9'):
		*f = flexString(trimmed)
	default:
		*f = ""
	}
	return nil
}

type teamRef struct {
	ID   flexInt    `json:"id"`
	Name flexString `json:"name"`
	Logo flexString `json:"logo"`
}

type goalsForAgainst struct {
	For     flexInt `json:"for"`
	Against flexInt `json:"against"`
}

type matchRecord struct {
	Played flexInt         `json:"played"`
	Win    flexInt         `json:"win"`
	Draw   flexInt         `json:"draw"`
	Lose   flexInt         `json:"lose"`
	Goals  goalsForAgainst `json:"goals"`
}

type standingItem struct {
	Rank      flexInt     `json:"rank"`
	Team      teamRef     `json:"team"`
	Points    flexInt     `json:"points"`
	GoalsDiff flexInt     `json:"goalsDiff"`
	Group     flexString  `json:"group"`
	Form      flexString  `json:"form"`
	All       matchRecord `json:"all"`
}

type standingsLeague struct {
	ID        flexInt                `json:"id"`
	Name      flexString             `json:"name"`
	Season    flexInt                `json:"season"`
	Standings sonic.NoCopyRawMessage `json:"standings"`
}

type standingsResponseItem struct {
	League standingsLeague `json:"league"`
}

type split struct {
	Home  flexInt `json:"home"`
	Away  flexInt `json:"away"`
	Total flexInt `json:"total"`
}

type splitText struct {
	Home  flexString `json:"home"`
	Away  flexString `json:"away"`
	Total flexString `json:"total"`
}

type goalSide struct {
	Total   split     `json:"total"`
	Average splitText `json:"average"`
}

type statisticsResponse struct {
	League struct {
		ID      flexInt    `json:"id"`
		Name    flexString `json:"name"`
		Country flexString `json:"country"`
		Logo    flexString `json:"logo"`
		Season  flexInt    `json:"season"`
	} `json:"league"`
	Team     teamRef    `json:"team"`
	Form     flexString `json:"form"`
	Fixtures struct {
		Played split `json:"played"`
		Wins   split `json:"wins"`
		Draws  split `json:"draws"`
		Loses  split `json:"loses"`
	} `json:"fixtures"`
	Goals struct {
		For     goalSide `json:"for"`
		Against goalSide `json:"against"`
	} `json:"goals"`
	Biggest struct {
		Streak struct {
			Wins  flexInt `json:"wins"`
			Draws flexInt `json:"draws"`
			Loses flexInt `json:"loses"`
		} `json:"streak"`
	} `json:"biggest"`
	CleanSheet    split `json:"clean_sheet"`
	FailedToScore split `json:"failed_to_score"`
}
