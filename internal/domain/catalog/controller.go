package catalog

import (
	"fmt"
	"strings"

	"github.com/modgen/modgen/internal/domain"
)

// renderController emits eight handler exports mirroring the route entries.
// Under colocated-service each handler delegates to the like-named service
// function; the other modes get inline not-implemented stubs.
func renderController(ctx Context) string {
	v := ctx.Variants
	delegating := ctx.Mode == domain.LayoutColocatedService
	var b strings.Builder

	b.WriteString("import { Request, Response } from 'express';\n")
	fmt.Fprintf(&b, "import ServerResponse from '%s';\n", ctx.infraImport("helpers/responses/server-response"))
	fmt.Fprintf(&b, "import catchAsync from '%s';\n", ctx.infraImport("helpers/middlewares/catch-async"))
	if delegating {
		b.WriteString("import {\n")
		for _, op := range operations {
			fmt.Fprintf(&b, "  %s,\n", op.serviceName(v))
		}
		fmt.Fprintf(&b, "} from './%s.service';\n", v.Lower)
	}
	b.WriteString("\n")

	for _, op := range operations {
		fmt.Fprintf(&b, "// %s\n", op.comment(v))
		fmt.Fprintf(&b, "export const %s = catchAsync(async (req: Request, res: Response) => {\n", op.handlerName(v))
		if delegating {
			fmt.Fprintf(&b, "  const result = await %s(%s);\n", op.serviceName(v), op.ctrlArgs)
			fmt.Fprintf(&b, "  ServerResponse(res, true, %d, '%s', result);\n", op.status, op.message(v))
		} else {
			b.WriteString("  // Replace this stub with real business logic.\n")
			fmt.Fprintf(&b, "  ServerResponse(res, false, 501, '%s is not implemented yet');\n", op.handlerName(v))
		}
		b.WriteString("});\n\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}
