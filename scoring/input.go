package scoring

import (
	"strconv"
	"strings"

	"github.com/ayoisaiah/quiver/internal/session"
)

// ParseInput parses a quick-entry token. Accepted forms are a score between 0
// and 10, "M" for a miss, "X" for an inner ten, and any of these followed by
// "@x,y" to attach normalized hit coordinates ("9@0.52,0.47", "X@0.5,0.5").
func ParseInput(token string) (Input, error) {
	token = strings.TrimSpace(token)

	scorePart, coords, hasCoords := strings.Cut(token, "@")

	in, err := parseScore(scorePart)
	if err != nil {
		return Input{}, errInvalidInput.Fmt(token)
	}

	if !hasCoords {
		return in, nil
	}

	x, y, err := parseCoords(coords)
	if err != nil {
		return Input{}, errInvalidCoords.Fmt(coords)
	}

	isX := in.Hit != nil && in.Hit.IsX
	in.Hit = session.At(x, y, isX)

	return in, nil
}

// ParseInputs parses a whitespace separated list of quick-entry tokens.
func ParseInputs(s string) ([]Input, error) {
	fields := strings.Fields(s)
	inputs := make([]Input, 0, len(fields))

	for _, f := range fields {
		in, err := ParseInput(f)
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, in)
	}

	return inputs, nil
}

func parseScore(s string) (Input, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return Input{Score: 0}, nil
	case "X":
		return Input{Score: session.MaxScore, Hit: session.XOnly()}, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Input{}, err
	}

	if n < 0 || n > session.MaxScore {
		return Input{}, strconv.ErrRange
	}

	return Input{Score: n}, nil
}

func parseCoords(s string) (x, y float64, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, strconv.ErrSyntax
	}

	x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, err
	}

	y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, err
	}

	if !(x >= 0 && x <= 1 && y >= 0 && y <= 1) {
		return 0, 0, strconv.ErrRange
	}

	return x, y, nil
}
