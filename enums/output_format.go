package enums

type OutputFormat string

const (
	OutputJson  OutputFormat = "json"
	OutputTable OutputFormat = "table"
)
