package catalog

import (
	"fmt"
	"strings"
)

// renderInterface emits a placeholder document shape with no fields.
func renderInterface(ctx Context) string {
	v := ctx.Variants
	var b strings.Builder

	b.WriteString("import { Document } from 'mongoose';\n\n")
	fmt.Fprintf(&b, "// Shape of a %s document. Add fields as needed.\n", v.Display)
	fmt.Fprintf(&b, "export interface I%s extends Document {}\n", v.Capitalized)

	return b.String()
}
