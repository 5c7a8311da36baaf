package main

// Exit codes shared by all akin commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing config, invalid values)
	ExitDataError   = 3 // Data error (unreadable corpus, dictionary or stopwords)
	ExitNotIndexed  = 4 // Permalink not present in the cache database
)
