package catalog

import (
	"fmt"
	"strings"
)

// renderService emits the eight Mongoose-forwarding data-access functions.
// No business validation lives here; the functions only forward to the model.
func renderService(ctx Context) string {
	v := ctx.Variants
	model := v.Capitalized
	iface := "I" + v.Capitalized
	fill := strings.NewReplacer("{{iface}}", iface, "{{model}}", model)
	var b strings.Builder

	fmt.Fprintf(&b, "import %s from './%s.model';\n", model, v.Lower)
	fmt.Fprintf(&b, "import { %s } from './%s.interface';\n\n", iface, v.Lower)

	for _, op := range operations {
		fmt.Fprintf(&b, "// %s\n", op.comment(v))
		fmt.Fprintf(&b, "export const %s = async (%s) => {\n", op.serviceName(v), fill.Replace(op.svcParams))
		fmt.Fprintf(&b, "  return %s;\n", fill.Replace(op.svcBody))
		b.WriteString("};\n\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}
