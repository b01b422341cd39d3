package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	StoreConnError  = 3
	DataError       = 4
	StoreError      = 5
	NotFound        = 6
)
