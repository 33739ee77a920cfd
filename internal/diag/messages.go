package diag

import "fmt"

// FileNotFound is reported when an input path does not name an existing file
func FileNotFound(filePath string) string {
	return fmt.Sprintf("File not found: %s", filePath)
}

// UnsupportedFileType is reported for extensions with no delimiter variant
func UnsupportedFileType(ext string) string {
	return fmt.Sprintf("Unsupported file type: %s", ext)
}

// InvalidFormat is reported for a line with too few fields
func InvalidFormat(lineNumber int, filePath string) string {
	return fmt.Sprintf("Invalid format in line %d of %s", lineNumber, filePath)
}

// Processed is reported after each line written to the output file
func Processed(fileName string) string {
	return fmt.Sprintf("Processed %s successfully.", fileName)
}
