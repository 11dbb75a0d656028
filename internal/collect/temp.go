package collect

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Temp is one temperature sensor reading.
type Temp struct {
	Sensor  string
	Celsius float64
}

// readTemps reads every temp*_input under the hwmon class directory.
// Values are in millidegrees Celsius.
func readTemps(hwmonDir string) ([]Temp, error) {
	entries, err := os.ReadDir(hwmonDir)
	if err != nil {
		return nil, err
	}

	var temps []Temp
	for _, e := range entries {
		dir := filepath.Join(hwmonDir, e.Name())
		chip := readTrimmed(filepath.Join(dir, "name"))
		if chip == "" {
			chip = e.Name()
		}
		inputs, _ := filepath.Glob(filepath.Join(dir, "temp*_input"))
		for _, in := range inputs {
			raw := readTrimmed(in)
			milli, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				continue
			}
			sensor := strings.TrimSuffix(filepath.Base(in), "_input")
			if label := readTrimmed(strings.TrimSuffix(in, "_input") + "_label"); label != "" {
				sensor = label
			}
			temps = append(temps, Temp{
				Sensor:  chip + " " + sensor,
				Celsius: float64(milli) / 1000,
			})
		}
	}
	sort.SliceStable(temps, func(i, j int) bool { return temps[i].Sensor < temps[j].Sensor })
	return temps, nil
}

func readTrimmed(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
