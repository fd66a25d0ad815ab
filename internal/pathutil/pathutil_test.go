package pathutil

import "testing"

func TestApplyEnvironmentOverrides(t *testing.T) {
	p := &Paths{
		configFileName: "config.yml",
		dbFileName:     "quiver.db",
		logFileName:    "quiver.log",
	}

	p.applyEnvironmentOverrides("  ")

	if p.dbFileName != "quiver.db" {
		t.Fatalf("blank environment must not rename files, got %s", p.dbFileName)
	}

	p.applyEnvironmentOverrides("dev")

	want := []string{"config_dev.yml", "quiver_dev.db", "quiver_dev.log"}
	got := []string{p.configFileName, p.dbFileName, p.logFileName}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %s, got %s", want[i], got[i])
		}
	}
}
