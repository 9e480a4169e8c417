package ocr

import "strings"

// ParseRegistrationText extracts merchant fields from the recognized text of
// a Malaysian business registration (SSM) certificate. The layout is
// line-oriented: labeled "KEY: value" lines, with the principal place of
// business continuing across unlabeled lines until the next labeled one.
func ParseRegistrationText(text string) map[string]string {
	extracted := make(map[string]string)

	var addressLines []string
	addressStarted := false

	for _, line := range strings.Split(text, "\n") {
		upperLine := strings.ToUpper(line)

		if strings.Contains(upperLine, "NAME") && extracted["businessName"] == "" {
			extracted["businessName"] = labeledValue(line)
			addressStarted = false
			continue
		}
		if strings.Contains(upperLine, "REGISTRATION NO.") && extracted["ssmNumber"] == "" {
			extracted["ssmNumber"] = labeledValue(line)
			addressStarted = false
			continue
		}
		if strings.Contains(upperLine, "PRINCIPLE PLACE OF BUSINESS") {
			addressStarted = true
			if first := labeledValue(line); first != "" {
				addressLines = append(addressLines, first)
			}
			continue
		}

		if addressStarted && !strings.Contains(line, ":") && strings.TrimSpace(line) != "" {
			addressLines = append(addressLines, strings.TrimSpace(line))
		} else if addressStarted {
			addressStarted = false
		}
	}

	if len(addressLines) > 0 {
		extracted["outletAddress"] = strings.Join(addressLines, ", ")
	}

	// Drop labels that had no value after the colon.
	for key, value := range extracted {
		if value == "" {
			delete(extracted, key)
		}
	}
	return extracted
}

// labeledValue returns everything after the first colon, preserving colons
// inside the value itself.
func labeledValue(line string) string {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(strings.Join(parts[1:], ":"))
}
