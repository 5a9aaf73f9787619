package catalog

import "github.com/modgen/modgen/internal/domain"

// operation describes one CRUD shape. The same table drives the route,
// controller and service renderers so the three artifacts can never drift
// out of step with each other.
//
// Declaration order is load-bearing: each "/many" entry must be registered
// before the "/:id" pattern of the same verb, or Express would capture the
// literal "many" as an id.
type operation struct {
	verb      string // Express router method
	slug      string // URL verb segment: create/update/delete/get
	many      bool
	validated bool // guard the :id param with validateId
	status    int  // success status used by delegating controllers
	action    string // past-tense verb for response messages
	ctrlArgs  string // request values forwarded to the service function
	svcParams string // service parameter list ({{iface}} placeholder)
	svcBody   string // service body expression ({{model}} placeholder)
}

var operations = []operation{
	{verb: "post", slug: "create", status: 201, action: "created", ctrlArgs: "req.body",
		svcParams: "payload: Partial<{{iface}}>", svcBody: "{{model}}.create(payload)"},
	{verb: "post", slug: "create", many: true, status: 201, action: "created", ctrlArgs: "req.body",
		svcParams: "payload: Partial<{{iface}}>[]", svcBody: "{{model}}.insertMany(payload)"},
	{verb: "put", slug: "update", many: true, status: 200, action: "updated", ctrlArgs: "req.body.filter, req.body.data",
		svcParams: "filter: Record<string, unknown>, payload: Partial<{{iface}}>", svcBody: "{{model}}.updateMany(filter, payload)"},
	{verb: "put", slug: "update", validated: true, status: 200, action: "updated", ctrlArgs: "req.params.id, req.body",
		svcParams: "id: string, payload: Partial<{{iface}}>", svcBody: "{{model}}.findByIdAndUpdate(id, payload, { new: true })"},
	{verb: "delete", slug: "delete", many: true, status: 200, action: "deleted", ctrlArgs: "req.body.ids",
		svcParams: "ids: string[]", svcBody: "{{model}}.deleteMany({ _id: { $in: ids } })"},
	{verb: "delete", slug: "delete", validated: true, status: 200, action: "deleted", ctrlArgs: "req.params.id",
		svcParams: "id: string", svcBody: "{{model}}.findByIdAndDelete(id)"},
	{verb: "get", slug: "get", many: true, status: 200, action: "fetched", ctrlArgs: "req.query",
		svcParams: "filter: Record<string, unknown> = {}", svcBody: "{{model}}.find(filter)"},
	{verb: "get", slug: "get", validated: true, status: 200, action: "fetched", ctrlArgs: "req.params.id",
		svcParams: "id: string", svcBody: "{{model}}.findById(id)"},
}

// urlPath builds the route path, e.g. "/update-user/:id".
func (op operation) urlPath(resourceName string) string {
	p := "/" + op.slug + "-" + resourceName
	switch {
	case op.many:
		p += "/many"
	case op.validated:
		p += "/:id"
	}
	return p
}

// handlerName is the controller export, e.g. "updateManyUser" or "getUserById".
func (op operation) handlerName(v domain.NameVariants) string {
	switch {
	case op.slug == "get" && op.many:
		return "getMany" + v.Capitalized
	case op.slug == "get":
		return "get" + v.Capitalized + "ById"
	case op.many:
		return op.slug + "Many" + v.Capitalized
	default:
		return op.slug + v.Capitalized
	}
}

// serviceName is the data-access export the controller delegates to.
func (op operation) serviceName(v domain.NameVariants) string {
	if op.slug == "create" || op.slug == "update" {
		return op.handlerName(v) + "IntoDb"
	}
	return op.handlerName(v) + "FromDb"
}

// comment is the one-line description emitted above each stub.
func (op operation) comment(v domain.NameVariants) string {
	verb := map[string]string{"create": "Create", "update": "Update", "delete": "Delete", "get": "Get"}[op.slug]
	if op.many {
		return verb + " many " + v.DisplayPlural
	}
	if op.validated {
		return verb + " one " + v.Display + " by id"
	}
	return verb + " one " + v.Display
}

// message is the success message used by delegating controllers.
func (op operation) message(v domain.NameVariants) string {
	if op.many {
		return v.DisplayPlural + " " + op.action + " successfully"
	}
	return v.Display + " " + op.action + " successfully"
}
