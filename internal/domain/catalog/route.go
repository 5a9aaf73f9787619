package catalog

import (
	"fmt"
	"strings"
)

// renderRoute emits the Express router with one entry per CRUD shape. The
// entries appear in the operations table order; see the ordering note there.
func renderRoute(ctx Context) string {
	v := ctx.Variants
	var b strings.Builder

	b.WriteString("import express from 'express';\n")
	b.WriteString("import {\n")
	for _, op := range operations {
		fmt.Fprintf(&b, "  %s,\n", op.handlerName(v))
	}
	fmt.Fprintf(&b, "} from '%s%s.controller';\n", ctx.ModuleRef, v.Lower)
	fmt.Fprintf(&b, "import { validateId } from '%s%s.validation';\n", ctx.ModuleRef, v.Lower)
	b.WriteString("\nconst router = express.Router();\n\n")

	for _, op := range operations {
		fmt.Fprintf(&b, "// %s\n", op.comment(v))
		if op.validated {
			fmt.Fprintf(&b, "router.%s('%s', validateId, %s);\n\n", op.verb, op.urlPath(v.Lower), op.handlerName(v))
		} else {
			fmt.Fprintf(&b, "router.%s('%s', %s);\n\n", op.verb, op.urlPath(v.Lower), op.handlerName(v))
		}
	}

	b.WriteString("export default router;\n")
	return b.String()
}
