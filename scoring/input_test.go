package scoring

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/quiver/internal/session"
)

func TestParseInput(t *testing.T) {
	cases := []struct {
		token string
		want  Input
		err   error
	}{
		{token: "7", want: Input{Score: 7}},
		{token: " 10 ", want: Input{Score: 10}},
		{token: "m", want: Input{Score: 0}},
		{token: "X", want: Input{Score: 10, Hit: session.XOnly()}},
		{token: "9@0.52,0.47", want: Input{Score: 9, Hit: session.At(0.52, 0.47, false)}},
		{token: "x@0.5,0.5", want: Input{Score: 10, Hit: session.At(0.5, 0.5, true)}},
		{token: "11", err: errInvalidInput},
		{token: "-1", err: errInvalidInput},
		{token: "ten", err: errInvalidInput},
		{token: "9@0.5", err: errInvalidCoords},
		{token: "9@1.5,0.5", err: errInvalidCoords},
	}

	for _, tc := range cases {
		got, err := ParseInput(tc.token)

		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseInput(%q): expected error %v, got %v", tc.token, tc.err, err)
			}

			continue
		}

		if err != nil {
			t.Errorf("ParseInput(%q): unexpected error %v", tc.token, err)
			continue
		}

		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseInput(%q) mismatch (-want +got):\n%s", tc.token, diff)
		}
	}
}

func TestParseInputs(t *testing.T) {
	got, err := ParseInputs("10 x m\t9@0.4,0.4")
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 4 {
		t.Fatalf("expected 4 inputs, got %d", len(got))
	}

	if _, err := ParseInputs("10 nope"); err == nil {
		t.Error("expected an error for an invalid token")
	}
}
