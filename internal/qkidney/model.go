// model.go defines the QKidney score variants and the arguments they take.
//
// QKidney has two outcome models, each with a female and a male equation.
// The equations take different argument lists: the female equations add
// b_renalstones and b_sle, and only the CKD model takes b_nsaid.

package qkidney

import (
	"fmt"
	"strings"
)

// Model identifies a QKidney outcome.
type Model int

const (
	// Neph3 is the risk of moderate-severe chronic kidney disease (CKD 3b-5).
	Neph3 Model = iota
	// Neph5 is the risk of end-stage renal failure.
	Neph5
)

// String returns the short outcome name used on the command line.
func (m Model) String() string {
	switch m {
	case Neph3:
		return "ckd"
	case Neph5:
		return "esrf"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// ParseModel accepts "ckd" or "neph3" and "esrf" or "neph5".
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ckd", "neph3":
		return Neph3, nil
	case "esrf", "neph5":
		return Neph5, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: ckd, esrf)", ErrUnknownModel, s)
	}
}

// Sex selects the female or male equation. The values match the 0/1 codes
// used by callers that pass sex as a number.
type Sex int

const (
	Female Sex = 0
	Male   Sex = 1
)

func (s Sex) String() string {
	switch s {
	case Female:
		return "female"
	case Male:
		return "male"
	default:
		return fmt.Sprintf("Sex(%d)", int(s))
	}
}

// ParseSex accepts "female", "male", "0" or "1".
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "female", "f", "0":
		return Female, nil
	case "male", "m", "1":
		return Male, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: female, male)", ErrUnknownSex, s)
	}
}

// Args holds every argument any QKidney equation takes. Arguments that the
// selected equation does not use are ignored by validation.
type Args struct {
	Age         int     `yaml:"age" json:"age"`
	CCF         int     `yaml:"b_CCF" json:"b_CCF"`
	CVD         int     `yaml:"b_cvd" json:"b_cvd"`
	NSAID       int     `yaml:"b_nsaid" json:"b_nsaid"`
	PVD         int     `yaml:"b_pvd" json:"b_pvd"`
	RA          int     `yaml:"b_ra" json:"b_ra"`
	RenalStones int     `yaml:"b_renalstones" json:"b_renalstones"`
	SLE         int     `yaml:"b_sle" json:"b_sle"`
	TreatedHyp  int     `yaml:"b_treatedhyp" json:"b_treatedhyp"`
	Type1       int     `yaml:"b_type1" json:"b_type1"`
	Type2       int     `yaml:"b_type2" json:"b_type2"`
	BMI         float64 `yaml:"bmi" json:"bmi"`
	Ethrisk     int     `yaml:"ethrisk" json:"ethrisk"`
	FHKidney    int     `yaml:"fh_kidney" json:"fh_kidney"`
	SBP         float64 `yaml:"sbp" json:"sbp"`
	SmokeCat    int     `yaml:"smoke_cat" json:"smoke_cat"`
	Surv        int     `yaml:"surv" json:"surv"`
	Town        float64 `yaml:"town" json:"town"`
}

// ArgNames returns the argument names taken by the equation for m and s,
// in the order the equation takes them.
func ArgNames(m Model, s Sex) []string {
	names := []string{"age", "b_CCF", "b_cvd"}
	if m == Neph3 {
		names = append(names, "b_nsaid")
	}
	names = append(names, "b_pvd", "b_ra")
	if s == Female {
		names = append(names, "b_renalstones", "b_sle")
	}
	return append(names,
		"b_treatedhyp", "b_type1", "b_type2",
		"bmi", "ethrisk", "fh_kidney", "sbp", "smoke_cat", "surv", "town",
	)
}

// Set assigns the argument called name from its text form.
func (a *Args) Set(name, value string) error {
	if f, ok := a.intField(name); ok {
		n, err := parseInt(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrBadValue, name, value)
		}
		*f = n
		return nil
	}
	if f, ok := a.floatField(name); ok {
		x, err := parseFloat(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrBadValue, name, value)
		}
		*f = x
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownArg, name)
}

func (a *Args) intField(name string) (*int, bool) {
	switch name {
	case "age":
		return &a.Age, true
	case "b_CCF":
		return &a.CCF, true
	case "b_cvd":
		return &a.CVD, true
	case "b_nsaid":
		return &a.NSAID, true
	case "b_pvd":
		return &a.PVD, true
	case "b_ra":
		return &a.RA, true
	case "b_renalstones":
		return &a.RenalStones, true
	case "b_sle":
		return &a.SLE, true
	case "b_treatedhyp":
		return &a.TreatedHyp, true
	case "b_type1":
		return &a.Type1, true
	case "b_type2":
		return &a.Type2, true
	case "ethrisk":
		return &a.Ethrisk, true
	case "fh_kidney":
		return &a.FHKidney, true
	case "smoke_cat":
		return &a.SmokeCat, true
	case "surv":
		return &a.Surv, true
	}
	return nil, false
}

func (a *Args) floatField(name string) (*float64, bool) {
	switch name {
	case "bmi":
		return &a.BMI, true
	case "sbp":
		return &a.SBP, true
	case "town":
		return &a.Town, true
	}
	return nil, false
}
