package animals

import "strings"

// Variant es la categoría fija de un animal. El conjunto es cerrado:
// solo Domestic y Pack la implementan (isVariant no se exporta).
type Variant interface {
	// Speak devuelve la frase fija de la categoría.
	Speak() string
	// Label es el nombre que se muestra en el listado.
	Label() string

	isVariant()
}

type Domestic struct{}

func (Domestic) Speak() string { return "I am a domestic animal." }
func (Domestic) Label() string { return "DomesticAnimal" }
func (Domestic) isVariant()    {}

type Pack struct{}

func (Pack) Speak() string { return "I am a pack animal." }
func (Pack) Label() string { return "PackAnimal" }
func (Pack) isVariant()    {}

// ParseVariant acepta "domestic" o "pack" sin importar mayúsculas. No
// recorta espacios: " pack " es una categoría desconocida.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case "domestic":
		return Domestic{}, nil
	case "pack":
		return Pack{}, nil
	default:
		return nil, ErrUnknownVariant
	}
}
