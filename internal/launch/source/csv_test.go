package source

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/launchboard/internal/launch"
)

func TestReadCSVOriginalHeaders(t *testing.T) {
	t.Parallel()

	input := "Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category\n" +
		"1,CCAFS LC-40,0,0.0,F9 v1.0  B0003,v1.0\n" +
		"27,KSC LC-39A,1,2490.0,F9 FT B1031.1,FT\n"
	got, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	want := []launch.LaunchRecord{
		{FlightNumber: 1, LaunchSite: "CCAFS LC-40", PayloadMassKG: 0, BoosterVersion: "F9 v1.0  B0003", BoosterVersionCategory: "v1.0", Outcome: launch.OutcomeFailure},
		{FlightNumber: 27, LaunchSite: "KSC LC-39A", PayloadMassKG: 2490, BoosterVersion: "F9 FT B1031.1", BoosterVersionCategory: "FT", Outcome: launch.OutcomeSuccess},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCSVSnakeCaseHeaders(t *testing.T) {
	t.Parallel()

	input := "launch_site,payload_mass_kg,booster_version_category,outcome_class\nA,1500,FT,1.0\n"
	got, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(got) != 1 || got[0].LaunchSite != "A" || got[0].Outcome != launch.OutcomeSuccess || got[0].PayloadMassKG != 1500 {
		t.Fatalf("ReadCSV() = %+v", got)
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(strings.NewReader("Launch Site,class,Booster Version Category\nA,1,FT\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("ReadCSV() error = %v, want %v", err, ErrMissingColumn)
	}
	if !strings.Contains(err.Error(), "Payload Mass (kg)") {
		t.Fatalf("error %q does not name the column", err)
	}
}

func TestReadCSVRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  string
		want string
	}{
		{name: "payload", row: "A,heavy,FT,1", want: "line 2"},
		{name: "class not binary", row: "A,100,FT,2", want: "class"},
		{name: "class fractional", row: "A,100,FT,0.5", want: "class"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			input := "launch_site,payload_mass_kg,booster_version_category,class\n" + tc.row + "\n"
			_, err := ReadCSV(strings.NewReader(input))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("ReadCSV() error = %v, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := ReadCSV(strings.NewReader("")); !errors.Is(err, launch.ErrEmptyDataset) {
		t.Fatalf("ReadCSV(empty) error = %v, want %v", err, launch.ErrEmptyDataset)
	}
}
