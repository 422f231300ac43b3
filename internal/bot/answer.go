// Package bot turns chat commands into calculator answers.
package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"Vitals/internal/calc/bac"
	"Vitals/internal/calc/bmi"
	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/calorie"
	"Vitals/internal/calc/healthyweight"
	"Vitals/internal/calc/person"
	"Vitals/internal/metrics"
)

type command struct {
	usage string
	args  int
	run   func(args []string) (string, error)
}

var commands = map[string]command{
	"/bmi":   {"/bmi <weight kg> <height cm>", 2, bmiAnswer},
	"/bmr":   {"/bmr <weight kg> <height cm> <age> <male|female>", 4, bmrAnswer},
	"/tdee":  {"/tdee <weight kg> <height cm> <age> <male|female> <sedentary|lightly_active|moderately_active|very_active|super_active>", 5, tdeeAnswer},
	"/bac":   {"/bac <weight lbs> <male|female> <drinks> <drink oz> <abv %> <hours>", 6, bacAnswer},
	"/range": {"/range <height cm> <age> <low|moderate|high> <small|medium|large>", 4, rangeAnswer},
}

var order = []string{"/bmi", "/bmr", "/tdee", "/bac", "/range"}

// errUsage makes Answer reply with the command usage.
var errUsage = errors.New("usage")

func Help() string {
	var b strings.Builder
	b.WriteString("Available calculators:\n")
	for _, name := range order {
		b.WriteString(commands[name].usage)
		b.WriteByte('\n')
	}
	b.WriteString("Estimates only, not medical advice.")
	return b.String()
}

// Answer replies to one message. Text that is not a command gets the help text.
func Answer(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Help()
	}
	name := strings.ToLower(fields[0])
	if i := strings.IndexByte(name, '@'); i > 0 {
		name = name[:i]
	}
	cmd, ok := commands[name]
	if !ok {
		return Help()
	}
	args := fields[1:]
	if len(args) != cmd.args {
		return "Usage: " + cmd.usage
	}
	out, err := cmd.run(args)
	switch {
	case errors.Is(err, errUsage):
		return "Usage: " + cmd.usage
	case err != nil:
		metrics.IncError("bot"+name, string(calcerr.KindOf(err)))
		return "Error: " + err.Error()
	}
	metrics.IncCalculation("bot" + name)
	return out
}

func floats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.ReplaceAll(a, ",", "."), 64)
		if err != nil {
			return nil, errUsage
		}
		out[i] = v
	}
	return out, nil
}

func bmiAnswer(args []string) (string, error) {
	v, err := floats(args)
	if err != nil {
		return "", err
	}
	res, err := bmi.Calculate(bmi.Input{Weight: v[0], Height: v[1]})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BMI %.1f: %s", res.BMI, res.Category), nil
}

func bmrAnswer(args []string) (string, error) {
	v, err := floats(args[:3])
	if err != nil {
		return "", err
	}
	res, err := calorie.Calculate(calorie.Input{Gender: args[3], Age: int(v[2]), Weight: v[0], Height: v[1], ActivityLevel: "sedentary"})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BMR %d kcal/day (Mifflin-St Jeor)", res.Summary.BMR), nil
}

func tdeeAnswer(args []string) (string, error) {
	v, err := floats(args[:3])
	if err != nil {
		return "", err
	}
	res, err := calorie.Calculate(calorie.Input{Gender: args[3], Age: int(v[2]), Weight: v[0], Height: v[1], ActivityLevel: args[4]})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BMR %d kcal/day, TDEE %d kcal/day (%s)", res.Summary.BMR, res.Summary.TDEE, res.Activity.Title), nil
}

func bacAnswer(args []string) (string, error) {
	sex, err := person.ParseSex(args[1])
	if err != nil {
		return "", err
	}
	v, err := floats(append([]string{args[0]}, args[2:]...))
	if err != nil {
		return "", err
	}
	res, err := bac.Calculate(bac.Input{Weight: v[0], Gender: string(sex), Drinks: &v[1], DrinkSizeOz: &v[2], ABVPercent: &v[3], HoursElapsed: &v[4]})
	if err != nil {
		return "", err
	}
	out := fmt.Sprintf("Estimated BAC %.4f: %s", res.BAC, res.Impairment.Level)
	if res.TimeToSoberHours != nil {
		out += fmt.Sprintf("\nSober in about %.1f h", *res.TimeToSoberHours)
	}
	return out + "\nNever drink and drive.", nil
}

func rangeAnswer(args []string) (string, error) {
	v, err := floats(args[:2])
	if err != nil {
		return "", err
	}
	res, err := healthyweight.Calculate(healthyweight.Input{Height: v[0], Age: int(v[1]), ActivityLevel: args[2], BodyFrame: args[3]})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Healthy weight %.1f-%.1f kg (BMI %.1f-%.1f), ideal %.1f kg",
		res.MinWeight, res.MaxWeight, res.MinBMI, res.MaxBMI, res.IdealWeight), nil
}
