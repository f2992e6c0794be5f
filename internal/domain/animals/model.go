package animals

import (
	"slices"
	"strings"
	"time"
)

// Animal representa un registro del padrón: identidad, edad, categoría
// y la lista de comandos aprendidos. Se construye con New; el valor cero
// no tiene categoría y Speak/Entry entran en pánico.
type Animal struct {
	ID   string
	Name string // no es único; la búsqueda por nombre toma el primero

	age      int
	variant  Variant
	commands []string // solo crece vía AddCommand

	CreatedAt time.Time
}

// Entry es una fila del listado (nombre, edad, etiqueta de categoría).
type Entry struct {
	Name  string
	Age   int
	Label string
}

func New(id, name string, age int, v Variant, createdAt time.Time) Animal {
	return Animal{
		ID:        id,
		Name:      name,
		age:       age,
		variant:   v,
		CreatedAt: createdAt,
	}
}

func (a Animal) Age() int { return a.age }

func (a Animal) Variant() Variant { return a.variant }

func (a Animal) Speak() string { return a.variant.Speak() }

// AddCommand agrega al final, sin validar ni deduplicar.
func (a *Animal) AddCommand(cmd string) {
	a.commands = append(a.commands, cmd)
}

// ListCommands une los comandos con ", " (vacío si no hay ninguno).
func (a Animal) ListCommands() string {
	return strings.Join(a.commands, ", ")
}

func (a Animal) Commands() []string {
	return slices.Clone(a.commands)
}

// Clone copia también el slice de comandos, para que el repo no comparta
// el backing array con quien llama.
func (a Animal) Clone() Animal {
	a.commands = slices.Clone(a.commands)
	return a
}

func (a Animal) Entry() Entry {
	return Entry{Name: a.Name, Age: a.age, Label: a.variant.Label()}
}
