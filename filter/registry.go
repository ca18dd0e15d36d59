package filter

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Kernel names recognized by Parse.
const (
	NameBoxBlur    = "boxblur"
	NameDither4    = "dither4"
	NameDither2    = "dither2"
	NameGrayscale  = "grayscale"
	NameLuminosity = "luminosity"
	NameKuwahara   = "kuwahara"
	NameWebsafe    = "websafe"
	NameDiffuse    = "diffuse"
)

var aliases = map[string]string{
	"blur":      NameBoxBlur,
	"box":       NameBoxBlur,
	"gray":      NameGrayscale,
	"grey":      NameGrayscale,
	"greyscale": NameGrayscale,
	"bmpgrey":   NameLuminosity,
}

// Names returns the canonical kernel names in display order.
func Names() []string {
	return []string{NameBoxBlur, NameDither4, NameDither2, NameGrayscale, NameLuminosity, NameKuwahara, NameWebsafe, NameDiffuse}
}

// Parse selects a kernel by case-insensitive name.
//
// size sets the blur radius or the Kuwahara window when positive and is
// ignored by kernels without a size; zero selects the default.
func Parse(name string, size int) (Kernel, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: size %d for %s", ErrInvalidParameter, size, name)
	}

	var (
		k   Kernel
		err error
	)
	switch key {
	case NameBoxBlur:
		k, err = NewBoxBlur(orDefault(size, DefaultBlurRadius))
	case NameDither4:
		k = NewDither4()
	case NameDither2:
		k = NewDither2()
	case NameGrayscale:
		k = NewGrayscale()
	case NameLuminosity:
		k = NewLuminosity()
	case NameKuwahara:
		k, err = NewKuwahara(orDefault(size, DefaultKuwaharaSize))
	case NameWebsafe:
		k = NewWebsafe()
	case NameDiffuse:
		k = NewDiffuse()
	default:
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownKernel, name, strings.Join(Names(), ", "))
	}
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function": "Parse",
		"name":     name,
		"kernel":   k.Name(),
		"in_place": k.InPlace(),
	}).Debug("Selected filter kernel")

	return k, nil
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
