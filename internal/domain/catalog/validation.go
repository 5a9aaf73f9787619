package catalog

import (
	"fmt"
	"strings"
)

// renderValidation emits a strict zod schema pair for the id and ids fields
// plus the validateId middleware the parameterized routes mount.
func renderValidation(ctx Context) string {
	v := ctx.Variants
	var b strings.Builder

	b.WriteString("import { NextFunction, Request, Response } from 'express';\n")
	b.WriteString("import { z } from 'zod';\n")
	fmt.Fprintf(&b, "import ServerResponse from '%s';\n\n", ctx.infraImport("helpers/responses/server-response"))

	b.WriteString("// Mongo ObjectId shape: 24 hex characters.\n")
	b.WriteString("const objectId = z.string().regex(/^[0-9a-fA-F]{24}$/, 'Invalid id format');\n\n")
	fmt.Fprintf(&b, "export const %sIdSchema = z.object({ id: objectId }).strict();\n\n", v.Lower)
	fmt.Fprintf(&b, "export const %sIdsSchema = z.object({ ids: z.array(objectId).nonempty() }).strict();\n\n", v.Lower)

	fmt.Fprintf(&b, "// Validates the :id route parameter before the %s update/delete/get-by-id handlers run.\n", v.Display)
	b.WriteString("export const validateId = (req: Request, res: Response, next: NextFunction) => {\n")
	fmt.Fprintf(&b, "  const parsed = %sIdSchema.safeParse({ id: req.params.id });\n", v.Lower)
	b.WriteString("  if (!parsed.success) {\n")
	fmt.Fprintf(&b, "    return ServerResponse(res, false, 400, 'Invalid %s id');\n", v.Display)
	b.WriteString("  }\n")
	b.WriteString("  next();\n")
	b.WriteString("};\n")

	return b.String()
}
