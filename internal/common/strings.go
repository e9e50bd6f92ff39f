package common

// UnknownStr is the name printed for an unrecognized enum value.
const UnknownStr = "unknown"
