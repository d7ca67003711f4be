package apilist

import (
	"regexp"
	"strings"
)

// serializationPatterns are the member signatures through which the Java
// serialization machinery interacts with a class. Members matching one of
// these shapes must stay accessible even when the rest of the class is
// private, otherwise Serializable classes break at runtime.
var serializationPatterns = []string{
	`readObject\(Ljava/io/ObjectInputStream;\)V`,
	`readObjectNoData\(\)V`,
	`readResolve\(\)Ljava/lang/Object;`,
	`serialVersionUID:J`,
	`serialPersistentFields:\[Ljava/io/ObjectStreamField;`,
	`writeObject\(Ljava/io/ObjectOutputStream;\)V`,
	`writeReplace\(\)Ljava/lang/Object;`,
}

var serializationRegexp = regexp.MustCompile(`^.*->(` + strings.Join(serializationPatterns, "|") + `)$`)

// IsSerialization reports whether the entry is one of the serialization
// interaction points. The match is structural: only the member part after
// "->" is inspected, the class prefix is irrelevant.
func IsSerialization(e Entry) bool {
	return serializationRegexp.MatchString(string(e))
}
