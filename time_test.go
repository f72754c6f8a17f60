package unichan

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUnixTime(t *testing.T) {
	now := time.Now()
	ut := AsUnixTime(now)

	if got := ut.Time().Unix(); got != now.Unix() {
		t.Fatalf("want %d, got %d", now.Unix(), got)
	}

	if got := ut.Add(time.Minute); got != ut+60 {
		t.Fatalf("want %d, got %d", ut+60, got)
	}

	if UnixTime(0).IsZero() != true {
		t.Fatal("zero time must be zero")
	}
	if ut.IsZero() {
		t.Fatal("current time must not be zero")
	}

	if err := UnixTime(-1).Validate(); err == nil {
		t.Fatal("negative time must not validate")
	}
	if err := ut.Validate(); err != nil {
		t.Fatalf("valid time must validate, got %+v", err)
	}
}

func TestUnixTimeUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json    string
		want    UnixTime
		wantErr bool
	}{
		"number":         {json: `123456`, want: 123456},
		"string time":    {json: `"2019-04-01T00:00:00Z"`, want: 1554076800},
		"negative":       {json: `-5`, wantErr: true},
		"invalid format": {json: `"yesterday"`, wantErr: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var ut UnixTime
			err := json.Unmarshal([]byte(tc.json), &ut)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %+v", err)
			}
			if ut != tc.want {
				t.Fatalf("want %d, got %d", tc.want, ut)
			}
		})
	}
}

func TestUnixDurationUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json    string
		want    UnixDuration
		wantErr bool
	}{
		"number":          {json: `120`, want: 120},
		"duration string": {json: `"2m"`, want: 120},
		"mixed units":     {json: `"1h30m"`, want: 5400},
		"invalid string":  {json: `"soon"`, wantErr: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var d UnixDuration
			err := json.Unmarshal([]byte(tc.json), &d)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %+v", err)
			}
			if d != tc.want {
				t.Fatalf("want %d, got %d", tc.want, d)
			}
		})
	}
}

func TestUnixDurationRoundtrip(t *testing.T) {
	d := AsUnixDuration(90 * time.Second)
	if got := d.Duration(); got != 90*time.Second {
		t.Fatalf("want 90s, got %s", got)
	}

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %+v", err)
	}
	if string(raw) != "90" {
		t.Fatalf("want 90, got %s", raw)
	}
}
