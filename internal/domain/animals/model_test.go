package animals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	cases := []struct {
		in    string
		label string
	}{
		{"domestic", "DomesticAnimal"},
		{"DOMESTIC", "DomesticAnimal"},
		{"Domestic", "DomesticAnimal"},
		{"PaCk", "PackAnimal"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := ParseVariant(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.label, v.Label())
		})
	}

	for _, bad := range []string{"", "reptile", "domestics", "pack animal", " pack ", "domestic\t", "\nPACK"} {
		_, err := ParseVariant(bad)
		assert.ErrorIs(t, err, ErrUnknownVariant, "input %q", bad)
	}
}

func TestAnimal_Speak(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "I am a domestic animal.", New("1", "Fido", 3, Domestic{}, now).Speak())
	assert.Equal(t, "I am a pack animal.", New("2", "Bolt", 5, Pack{}, now).Speak())
	// sin New no hay categoría
	assert.Panics(t, func() { _ = Animal{}.Speak() })
	assert.Panics(t, func() { _ = Animal{}.Entry() })
}

func TestAnimal_Commands_AppendOnly(t *testing.T) {
	a := New("1", "Fido", 3, Domestic{}, time.Now())
	assert.Equal(t, "", a.ListCommands())

	a.AddCommand("sit")
	a.AddCommand("stay")
	a.AddCommand("sit")

	assert.Equal(t, "sit, stay, sit", a.ListCommands())
	assert.Equal(t, []string{"sit", "stay", "sit"}, a.Commands())
	assert.Equal(t, 3, a.Age())
}

func TestAnimal_Clone_DoesNotShareCommands(t *testing.T) {
	a := New("1", "Fido", 3, Domestic{}, time.Now())
	a.AddCommand("sit")

	c := a.Clone()
	c.AddCommand("stay")

	assert.Equal(t, "sit", a.ListCommands())
	assert.Equal(t, "sit, stay", c.ListCommands())
}

func TestAnimal_Entry(t *testing.T) {
	a := New("1", "Fido", 3, Domestic{}, time.Now())
	assert.Equal(t, Entry{Name: "Fido", Age: 3, Label: "DomesticAnimal"}, a.Entry())
}
