package catalog

import (
	"fmt"
	"strings"
)

// renderModel emits a placeholder Mongoose model with an empty schema.
func renderModel(ctx Context) string {
	v := ctx.Variants
	var b strings.Builder

	b.WriteString("import mongoose, { Schema } from 'mongoose';\n")
	fmt.Fprintf(&b, "import { I%s } from './%s.interface';\n\n", v.Capitalized, v.Lower)
	fmt.Fprintf(&b, "// Structural definition of a %s document. Add fields as needed.\n", v.Display)
	fmt.Fprintf(&b, "const %sSchema = new Schema<I%s>({});\n\n", v.Lower, v.Capitalized)
	fmt.Fprintf(&b, "const %s = mongoose.model<I%s>('%s', %sSchema);\n\n", v.Capitalized, v.Capitalized, v.Capitalized, v.Lower)
	fmt.Fprintf(&b, "export default %s;\n", v.Capitalized)

	return b.String()
}
