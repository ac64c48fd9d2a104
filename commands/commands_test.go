package commands

import (
	"testing"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	want := map[string]bool{"start": false, "migrate": false, "create-migration": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected subcommand %q", name)
		}
	}
}

func TestCreateMigration_RejectsBadNames(t *testing.T) {
	for _, name := range []string{"", "add users", "drop;table", "../escape"} {
		migrationName = name
		if err := createMigrationCmd.RunE(createMigrationCmd, nil); err == nil {
			t.Fatalf("expected error for name %q", name)
		}
	}
}
