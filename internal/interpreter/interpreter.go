// Package interpreter implementa el menú interactivo del registro:
// lee una opción por línea, llama al Service y escribe el resultado.
package interpreter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"animal-registry/internal/domain/animals"
	"animal-registry/internal/platform/logger"
)

const menu = `
--- Animal Registry Menu ---
1. Add New Animal
2. Train Animal
3. List Animals
4. Speak (Animal Sound)
5. Exit
`

// Interpreter es de un solo hilo: cada opción corre completa antes de
// leer la siguiente línea.
type Interpreter struct {
	svc *animals.Service
	in  *bufio.Reader
	out io.Writer
	log logger.Logger
}

func New(svc *animals.Service, in io.Reader, out io.Writer, log logger.Logger) *Interpreter {
	if log == nil {
		log = logger.Discard()
	}
	return &Interpreter{
		svc: svc,
		in:  bufio.NewReader(in),
		out: out,
		log: log.With(map[string]any{"component": "interpreter"}),
	}
}

// Run muestra el menú hasta que se elige 5 o se acaba la entrada (EOF).
// Solo devuelve error si falla la lectura, el repo o se cancela ctx.
func (it *Interpreter) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		it.print(menu)
		choice, err := it.prompt("Choose an option: ")
		if err != nil {
			return it.endOfInput(err)
		}

		// comparación exacta: " 1" es una opción inválida
		switch choice {
		case "1":
			err = it.addAnimal(ctx)
		case "2":
			err = it.trainAnimal(ctx)
		case "3":
			err = it.listAnimals(ctx)
		case "4":
			err = it.speak(ctx)
		case "5":
			it.println("Exiting the program.")
			it.log.Debug("exit requested", nil)
			return nil
		default:
			it.println("Invalid option! Please try again.")
		}
		if err != nil {
			return it.endOfInput(err)
		}
	}
}

// endOfInput trata EOF como salida normal (ej: stdin redirigido).
func (it *Interpreter) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		it.log.Debug("input closed", nil)
		return nil
	}
	return err
}

func (it *Interpreter) addAnimal(ctx context.Context) error {
	variant, err := it.prompt("Enter animal type (domestic/pack): ")
	if err != nil {
		return err
	}
	name, err := it.prompt("Enter animal's name: ")
	if err != nil {
		return err
	}
	rawAge, err := it.prompt("Enter animal's age: ")
	if err != nil {
		return err
	}

	// Edad inválida es recuperable: se avisa y se vuelve al menú.
	age, convErr := strconv.Atoi(strings.TrimSpace(rawAge))
	if convErr != nil {
		it.log.Debug("malformed age", map[string]any{"input": rawAge})
		it.println("Invalid age! Please enter a non-negative whole number.")
		return nil
	}

	a, err := it.svc.AddAnimal(ctx, variant, name, age)
	switch {
	case errors.Is(err, animals.ErrUnknownVariant):
		it.log.Debug("unknown variant", map[string]any{"variant": variant})
		it.println("Unknown animal type!")
		return nil
	case errors.Is(err, animals.ErrInvalidAge):
		it.log.Debug("negative age", map[string]any{"age": age})
		it.println("Invalid age! Please enter a non-negative whole number.")
		return nil
	case err != nil:
		return err
	}

	it.log.Info("animal added", map[string]any{
		"id":      a.ID,
		"name":    a.Name,
		"variant": a.Variant().Label(),
	})
	it.printf("Added new animal: %s\n", a.Name)

	total, err := it.svc.Count(ctx)
	if err != nil {
		return err
	}
	it.printf("Total animals after adding: %d\n", total)
	return nil
}

func (it *Interpreter) trainAnimal(ctx context.Context) error {
	name, err := it.prompt("Enter the name of the animal to train: ")
	if err != nil {
		return err
	}
	command, err := it.prompt("Enter the command to teach: ")
	if err != nil {
		return err
	}

	a, err := it.svc.TrainAnimal(ctx, name, command)
	if errors.Is(err, animals.ErrNotFound) {
		it.println("Animal not found!")
		return nil
	}
	if err != nil {
		return err
	}

	it.log.Debug("animal trained", map[string]any{
		"id":       a.ID,
		"name":     a.Name,
		"commands": a.ListCommands(),
	})
	it.printf("%s has learned the command: %s\n", name, command)
	return nil
}

func (it *Interpreter) listAnimals(ctx context.Context) error {
	n := 0
	for e, err := range it.svc.ListAll(ctx) {
		if err != nil {
			return err
		}
		it.printf("Name: %s, Age: %d, Type: %s\n", e.Name, e.Age, e.Label)
		n++
	}

	if n == 0 {
		it.println("No animals in the registry.")
		return nil
	}
	it.printf("Total animals in registry: %d\n", n)
	return nil
}

func (it *Interpreter) speak(ctx context.Context) error {
	name, err := it.prompt("Enter the name of the animal to hear it speak: ")
	if err != nil {
		return err
	}

	a, ok, err := it.svc.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		it.println("Animal not found!")
		return nil
	}
	it.printf("%s says: %s\n", a.Name, a.Speak())
	return nil
}

// prompt escribe la etiqueta y lee una línea completa, sin límite de
// largo, quitando el fin de línea. Una última línea sin '\n' se devuelve
// normal; el EOF aparece en la lectura siguiente.
func (it *Interpreter) prompt(label string) (string, error) {
	it.print(label)
	line, err := it.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", io.EOF
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Los errores de escritura se ignoran: stdout es la única salida.
func (it *Interpreter) print(s string) { _, _ = io.WriteString(it.out, s) }

func (it *Interpreter) println(s string) { _, _ = fmt.Fprintln(it.out, s) }

func (it *Interpreter) printf(format string, args ...any) { _, _ = fmt.Fprintf(it.out, format, args...) }
