package config

// SecretValue is a string that redacts itself when printed or logged.
type SecretValue string

func (v SecretValue) String() string {
	return "*******"
}

func (v SecretValue) Value() string {
	return string(v)
}
