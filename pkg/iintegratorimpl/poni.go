/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iintegratorimpl

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/drnecj/UPBL09a/pkg/iintegrator"
)

// PONI file: "key: value" lines, '#' comments. Versions 1 and 2 are accepted,
// pixel sizes come either from PixelSize1/PixelSize2 or from the v2
// Detector_config JSON.
func LoadPONI(path string) (Geometry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Geometry{}, fmt.Errorf("%s: %w", path, iintegrator.ErrConfigurationNotFound)
		}
		return Geometry{}, err
	}
	geom, err := parsePONI(string(raw))
	if err != nil {
		return Geometry{}, fmt.Errorf("%s: %w", path, err)
	}
	return geom, nil
}

type detectorConfig struct {
	Pixel1 float64 `json:"pixel1"`
	Pixel2 float64 `json:"pixel2"`
}

func parsePONI(content string) (geom Geometry, err error) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return geom, fmt.Errorf("line '%s' is not 'key: value': %w", line, iintegrator.ErrConstruction)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "detector_config":
			cfg := detectorConfig{}
			if err = json.Unmarshal([]byte(value), &cfg); err != nil {
				return geom, fmt.Errorf("bad detector config '%s': %w", value, iintegrator.ErrConstruction)
			}
			geom.PixelSize1 = cfg.Pixel1
			geom.PixelSize2 = cfg.Pixel2
		case "distance", "poni1", "poni2", "rot1", "rot2", "rot3", "wavelength", "pixelsize1", "pixelsize2":
			num, parseErr := strconv.ParseFloat(value, 64)
			if parseErr != nil {
				return geom, fmt.Errorf("key '%s' value '%s' is not a number: %w", key, value, iintegrator.ErrConstruction)
			}
			switch key {
			case "distance":
				geom.Distance = num
			case "poni1":
				geom.Poni1 = num
			case "poni2":
				geom.Poni2 = num
			case "rot1":
				geom.Rot1 = num
			case "rot2":
				geom.Rot2 = num
			case "rot3":
				geom.Rot3 = num
			case "wavelength":
				geom.Wavelength = num
			case "pixelsize1":
				geom.PixelSize1 = num
			case "pixelsize2":
				geom.PixelSize2 = num
			}
		default:
			// calibration metadata (poni_version, detector, ...) is not geometry
		}
	}

	if geom.Distance <= 0 {
		return geom, fmt.Errorf("distance %g must be positive: %w", geom.Distance, iintegrator.ErrConstruction)
	}
	if geom.PixelSize1 <= 0 || geom.PixelSize2 <= 0 {
		return geom, fmt.Errorf("pixel sizes %g×%g must be positive: %w",
			geom.PixelSize1, geom.PixelSize2, iintegrator.ErrConstruction)
	}
	return geom, nil
}
