package widget

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
)

// ErrNoContent is returned when a widget script finishes without assigning content.
var ErrNoContent = errors.New("script did not set content")

// EvalContent runs the widget's Starlark script with id and title predeclared
// and returns the value it assigns to content.
func EvalContent(d Def) (string, error) {
	thread := &starlark.Thread{Name: d.ID, Print: func(_ *starlark.Thread, msg string) {}}
	predeclared := starlark.StringDict{
		"id":    starlark.String(d.ID),
		"title": starlark.String(d.Title),
	}

	globals, err := starlark.ExecFile(thread, d.ID+".star", d.Script, predeclared)
	if err != nil {
		return "", fmt.Errorf("script: %w", err)
	}
	v, ok := globals["content"]
	if !ok {
		return "", ErrNoContent
	}
	return contentString(v), nil
}

func contentString(v starlark.Value) string {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.NoneType:
		return ""
	}
	return v.String()
}
