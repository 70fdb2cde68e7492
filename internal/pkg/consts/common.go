package consts

const (
	SessionIDKey = "session_id"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
)
