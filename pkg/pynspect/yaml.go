package pynspect

import "gopkg.in/yaml.v3"

// DecodeYAML decodes a YAML document into the map[string]interface{} shape
// jpath's accessors expect, for building a record to pass to Filter/Match
// from a fixture or config file rather than a hand-built map.
func DecodeYAML(data []byte) (map[string]interface{}, error) {
	var record map[string]interface{}
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return record, nil
}
