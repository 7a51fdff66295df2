package form

// Option is one entry of a selection field.
type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// DefaultCountries is the country list offered when config has none.
var DefaultCountries = []Option{
	{Value: "us", Label: "United States"},
	{Value: "ca", Label: "Canada"},
	{Value: "gb", Label: "United Kingdom"},
	{Value: "in", Label: "India"},
	{Value: "au", Label: "Australia"},
	{Value: "de", Label: "Germany"},
}

// DefaultSecurityQuestions is the question list offered when config has none.
var DefaultSecurityQuestions = []Option{
	{Value: "pet", Label: "What was the name of your first pet?"},
	{Value: "school", Label: "What was the name of your first school?"},
	{Value: "city", Label: "In which city were you born?"},
	{Value: "maiden", Label: "What is your mother's maiden name?"},
}

// LabelFor returns the label of value in opts, or value itself.
func LabelFor(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
