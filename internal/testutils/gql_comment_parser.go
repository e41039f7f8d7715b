package testutils

import (
	"fmt"
	"regexp"
)

// FindOptionString returns the value of a `# option:<name>: <value>` comment line in source.
func FindOptionString(t TestingT, optionName, source string) string {
	t.Helper()

	value, ok := findOption(t, optionName, source)
	if !ok {
		t.Logf("option %s value is not found", optionName)
	}
	return value
}

func FindOptionBool(t TestingT, optionName, source string) bool {
	t.Helper()

	value, ok := findOption(t, optionName, source)
	if !ok {
		t.Logf("option %s value is not found", optionName)
		return false
	}
	return value == "true"
}

func findOption(t TestingT, optionName, source string) (string, bool) {
	t.Helper()

	pattern := fmt.Sprintf("(?m)^# option:%s:[ \\t]*(.*?)[ \\t]*$", regexp.QuoteMeta(optionName))
	re, err := regexp.Compile(pattern)
	if err != nil {
		t.Fatal(err)
	}

	ss := re.FindStringSubmatch(source)
	if len(ss) != 2 {
		return "", false
	}
	return ss[1], true
}
