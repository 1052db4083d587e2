package field

import (
	"testing"

	"github.com/getnanoid/nanoid/pkg/config"
)

func TestDefinition_DDL(t *testing.T) {
	tests := []struct {
		name     string
		def      Definition
		settings config.Settings
		want     string
	}{
		{
			name: "plain column default size",
			def:  Definition{Column: "ref"},
			want: "ref VARCHAR(21) NOT NULL",
		},
		{
			name: "unique",
			def:  Definition{Column: "slug", Unique: true, Size: 8},
			want: "slug VARCHAR(8) NOT NULL UNIQUE",
		},
		{
			name: "primary key wins over unique",
			def:  Definition{Column: "id", Unique: true, PrimaryKey: true},
			want: "id VARCHAR(21) NOT NULL PRIMARY KEY",
		},
		{
			name:     "settings size",
			def:      Definition{Column: "code"},
			settings: config.Settings{Size: 12},
			want:     "code VARCHAR(12) NOT NULL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.def.DDL(tt.settings); got != tt.want {
				t.Errorf("DDL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModel_Field(t *testing.T) {
	m := &Model{
		Table:    "users",
		PKColumn: "id",
		Fields: []Definition{
			{Column: "id", PrimaryKey: true},
			{Column: "slug", Unique: true},
		},
	}

	if _, ok := m.Field("slug"); !ok {
		t.Error("Field(slug) not found")
	}
	if _, ok := m.Field("email"); ok {
		t.Error("Field(email) found, want miss")
	}
}

func TestModel_Attempts(t *testing.T) {
	if got := (&Model{}).attempts(); got != DefaultMaxAttempts {
		t.Errorf("attempts() = %d, want %d", got, DefaultMaxAttempts)
	}
	if got := (&Model{MaxAttempts: 3}).attempts(); got != 3 {
		t.Errorf("attempts() = %d, want 3", got)
	}
}

func TestNanoID_Value(t *testing.T) {
	v, err := NanoID("abc").Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "abc" {
		t.Errorf("Value() = %v, want abc", v)
	}

	v, err = NanoID("").Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Errorf("empty Value() = %v, want nil", v)
	}
}

func TestNanoID_Scan(t *testing.T) {
	var n NanoID

	if err := n.Scan("xyz"); err != nil || n != "xyz" {
		t.Errorf("Scan(string) = %q, %v", n, err)
	}
	if err := n.Scan([]byte("bytes")); err != nil || n != "bytes" {
		t.Errorf("Scan([]byte) = %q, %v", n, err)
	}
	if err := n.Scan(nil); err != nil || n != "" {
		t.Errorf("Scan(nil) = %q, %v", n, err)
	}
	if err := n.Scan(42); err == nil {
		t.Error("Scan(int) did not fail")
	}
}
