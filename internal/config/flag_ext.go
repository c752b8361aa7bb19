package config

import (
	"strconv"
	"strings"
)

// strFlag, intFlag and boolFlag remember whether they were set on the command line,
// so that a JSON config file only fills values the user did not pass explicitly.

type strFlag struct {
	v   string
	set bool
}

func (f *strFlag) String() string     { return f.v }
func (f *strFlag) Set(s string) error { f.v, f.set = s, true; return nil }

type intFlag struct {
	v   int
	set bool
}

func (f *intFlag) String() string { return strconv.Itoa(f.v) }
func (f *intFlag) Set(s string) error {
	i, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	f.v, f.set = i, true
	return nil
}

type boolFlag struct {
	v   bool
	set bool
}

func (f *boolFlag) String() string   { return strconv.FormatBool(f.v) }
func (f *boolFlag) IsBoolFlag() bool { return true }
func (f *boolFlag) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	f.v, f.set = b, true
	return nil
}

// mapFlag collects repeated key=value pairs.
type mapFlag struct {
	v   map[string]string
	set bool
}

func (f *mapFlag) String() string {
	pairs := make([]string, 0, len(f.v))
	for k, v := range f.v {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (f *mapFlag) Set(s string) error {
	k, v, err := ParseKeyValue(s)
	if err != nil {
		return err
	}
	if f.v == nil {
		f.v = make(map[string]string)
	}
	f.v[k], f.set = v, true
	return nil
}
