package model

// Doctor is reference data from configuration; the roster is not edited
// at runtime.
type Doctor struct {
	ID        string `json:"id" mapstructure:"id"`
	Name      string `json:"name" mapstructure:"name"`
	Specialty string `json:"specialty" mapstructure:"specialty"`
}
