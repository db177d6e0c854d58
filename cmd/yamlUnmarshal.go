package cmd

// yamlUnmarshal keeps the yaml import confined to yaml.go
func yamlUnmarshal(b []byte, out any) error {
	return yamlUnmarshalImpl(b, out)
}
