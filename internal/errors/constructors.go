package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *WikiBuilderError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigRequired(field string) *WikiBuilderError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

func ValidationFailed(field, reason string) *WikiBuilderError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Prepare pipeline errors

func SourceNotFound(path string) *WikiBuilderError {
	return New(CategoryFileSystem, SeverityFatal, "source directory does not exist").
		WithContext("path", path)
}

func PageWriteError(page string, cause error) *WikiBuilderError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to write wiki page").
		WithContext("page", page)
}

func ImageCopyError(image string, cause error) *WikiBuilderError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "failed to copy image").
		WithContext("image", image)
}

func DiscoveryError(cause error) *WikiBuilderError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "documentation discovery failed")
}

// Git errors

func GitOpenError(dir string, cause error) *WikiBuilderError {
	return Wrap(cause, CategoryGit, SeverityFatal, "failed to open wiki repository").
		WithContext("directory", dir)
}

func GitCommitError(dir string, cause error) *WikiBuilderError {
	return Wrap(cause, CategoryGit, SeverityFatal, "failed to commit wiki changes").
		WithContext("directory", dir)
}
