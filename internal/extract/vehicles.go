package extract

import (
	"regexp"
	"strconv"
	"strings"

	"dispatch-move-logger/internal/models"
)

var (
	truckCountRe = regexp.MustCompile(`(?i)\b(\d+)\s*trucks?\b`)
	twoTrucksRe  = regexp.MustCompile(`(?i)\btwo\s+trucks?\b`)
	vanCountRe   = regexp.MustCompile(`(?i)\b(\d+)\s*vans?\b`)
	// Label capped at two tokens so one match cannot swallow a following
	// "N x" group on the same line.
	nByLabelRe = regexp.MustCompile(`(?i)\b(\d+)\s*x\s*([a-z0-9/-]+(?:\s[a-z/-]+)?)`)
	vanWordRe  = regexp.MustCompile(`(?i)\b(vans?|lutons?)\b`)
)

// countVehicles accumulates the vehicle count triple asserted by one line.
// Counts from multiple rules on the same line add together; "a van" style
// mentions without a number contribute one only when no explicit count for
// that category was found on the line.
func countVehicles(line string) models.VehicleCounts {
	lower := strings.ToLower(line)
	var c models.VehicleCounts

	for _, m := range truckCountRe.FindAllStringSubmatch(line, -1) {
		n, _ := strconv.Atoi(m[1])
		c.Truck += n
	}
	if twoTrucksRe.MatchString(line) {
		c.Truck += 2
	}
	for _, m := range vanCountRe.FindAllStringSubmatch(line, -1) {
		n, _ := strconv.Atoi(m[1])
		c.Van += n
	}

	for _, m := range nByLabelRe.FindAllStringSubmatch(line, -1) {
		n, _ := strconv.Atoi(m[1])
		label := strings.ToLower(m[2])
		switch {
		case strings.Contains(label, "truck"):
			c.Truck += n
		case strings.Contains(label, "van"), strings.Contains(label, "luton"):
			c.Van += n
		case strings.Contains(label, "car"), strings.Contains(label, "4x4"):
			c.Car += n
		}
	}

	if strings.Contains(lower, "lighting truck") && c.Truck == 0 {
		c.Truck = 1
	}
	if vanWordRe.MatchString(line) && c.Van == 0 {
		c.Van = 1
	}

	return c
}

// VehicleLabel reduces a count triple to a category label: the single
// non-zero category's name, "Mixed" when more than one is non-zero, or
// empty when all are zero.
func VehicleLabel(c models.VehicleCounts) string {
	var label string
	nonZero := 0
	if c.Truck > 0 {
		label = "Truck"
		nonZero++
	}
	if c.Van > 0 {
		label = "Van"
		nonZero++
	}
	if c.Car > 0 {
		label = "Car"
		nonZero++
	}
	if nonZero > 1 {
		return "Mixed"
	}
	return label
}
