package apilist

// Entry is a single API member signature in dex notation, for example
// "Lcom/example/Api;->method(Ljava/lang/String;)V". Entries are opaque:
// equality is exact string identity and no structure is parsed out of them.
type Entry string

// String returns the string representation of an Entry.
func (e Entry) String() string {
	return string(e)
}

// Entries converts a slice of strings to a slice of Entry values.
func Entries(values []string) []Entry {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry(v)
	}
	return entries
}

// Strings converts a slice of Entry values back to plain strings.
func Strings(entries []Entry) []string {
	values := make([]string, len(entries))
	for i, e := range entries {
		values[i] = string(e)
	}
	return values
}
