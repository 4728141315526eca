package carbonevent

import (
	"net/http"

	"carbon-tracker/core/apidoc"

	"github.com/getkin/kin-openapi/openapi3"
)

const tag = "carbon-events"

func eventTypeSchema() *openapi3.Schema {
	values := make([]any, 0, len(EventTypes))
	for _, t := range EventTypes {
		values = append(values, string(t))
	}
	return openapi3.NewStringSchema().WithEnum(values...)
}

func eventSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewUUIDSchema()).
		WithProperty("type", eventTypeSchema()).
		WithProperty("date", openapi3.NewStringSchema().WithFormat("date")).
		WithProperty("amount", openapi3.NewIntegerSchema().WithMin(0))
}

func requestSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("type", eventTypeSchema()).
		WithProperty("date", openapi3.NewStringSchema().WithFormat("date")).
		WithProperty("amount", openapi3.NewIntegerSchema().WithMin(0))
}

func legSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("departureAirport", openapi3.NewStringSchema()).
		WithProperty("destinationAirport", openapi3.NewStringSchema()).
		WithProperty("cabinClass", openapi3.NewStringSchema().WithEnum("economy", "premium"))
}

func typeTotalSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("type", eventTypeSchema()).
		WithProperty("amount", openapi3.NewIntegerSchema())
}

func exportSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("bucket", openapi3.NewStringSchema()).
		WithProperty("key", openapi3.NewStringSchema()).
		WithProperty("count", openapi3.NewIntegerSchema())
}

func idParam() *openapi3.ParameterRef {
	return &openapi3.ParameterRef{Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewUUIDSchema())}
}

func queryParam(name, description string, schema *openapi3.Schema) *openapi3.ParameterRef {
	p := openapi3.NewQueryParameter(name).WithRequired(true).WithSchema(schema)
	p.Description = description
	return &openapi3.ParameterRef{Value: p}
}

func rangeParams() openapi3.Parameters {
	date := openapi3.NewStringSchema().WithFormat("date")
	return openapi3.Parameters{
		queryParam("start", "Start date (inclusive)", date),
		queryParam("end", "End date (inclusive)", date),
	}
}

func operation(id, summary string, params openapi3.Parameters) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = id
	op.Summary = summary
	op.Tags = []string{tag}
	op.Parameters = params
	op.AddResponse(http.StatusBadRequest, apidoc.ErrorResponse("Bad Request"))
	op.AddResponse(http.StatusInternalServerError, apidoc.ErrorResponse("Internal Server Error"))
	return op
}

func jsonBody(schema *openapi3.Schema) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(schema)}
}

// Document describes the carbon event operations on doc.
func Document(doc *openapi3.T) {
	byID := BasePath + "/{id}"

	get := operation("getCarbonEventById", "Get a carbon event", openapi3.Parameters{idParam()})
	get.AddResponse(http.StatusOK, apidoc.JSONResponse("Carbon event", eventSchema()))
	get.AddResponse(http.StatusNotFound, apidoc.ErrorResponse("Not Found"))
	doc.AddOperation(byID, http.MethodGet, get)

	list := operation("getCarbonEventsInTimeRange", "List carbon events in a date range", rangeParams())
	list.AddResponse(http.StatusOK, apidoc.JSONResponse("Carbon events", openapi3.NewArraySchema().WithItems(eventSchema())))
	doc.AddOperation(BasePath, http.MethodGet, list)

	acc := operation("accumulateCarbonEventsInTimeRange", "Total emitted carbon in grams in a date range", rangeParams())
	acc.AddResponse(http.StatusOK, apidoc.JSONResponse("Total grams", openapi3.NewIntegerSchema()))
	doc.AddOperation(BasePath+"/accumulate", http.MethodGet, acc)

	accByType := operation("accumulateCarbonEventsInTimeRangeByType", "Emitted carbon per event type in a date range", rangeParams())
	accByType.AddResponse(http.StatusOK, apidoc.JSONResponse("Totals per type", openapi3.NewArraySchema().WithItems(typeTotalSchema())))
	doc.AddOperation(BasePath+"/accumulate/by-type", http.MethodGet, accByType)

	create := operation("createCarbonEvent", "Create a carbon event", nil)
	create.RequestBody = jsonBody(requestSchema())
	create.AddResponse(http.StatusOK, apidoc.JSONResponse("Created event", eventSchema()))
	doc.AddOperation(BasePath, http.MethodPost, create)

	flight := operation("createFlightCarbonEvent", "Estimate and store a flight", openapi3.Parameters{
		queryParam("passengers", "Number of passengers", openapi3.NewIntegerSchema().WithMin(1)),
	})
	flight.RequestBody = jsonBody(openapi3.NewArraySchema().WithItems(legSchema()))
	flight.AddResponse(http.StatusOK, apidoc.JSONResponse("Created event", eventSchema()))
	flight.AddResponse(http.StatusBadGateway, apidoc.ErrorResponse("Estimate Failed"))
	doc.AddOperation(BasePath+"/flight", http.MethodPost, flight)

	car := operation("createCarCarbonEvent", "Estimate and store a car trip", openapi3.Parameters{
		queryParam("distanceValue", "Distance in km", openapi3.NewFloat64Schema()),
		queryParam("vehicleModelId", "Carbon Interface vehicle model id", openapi3.NewStringSchema()),
	})
	car.AddResponse(http.StatusOK, apidoc.JSONResponse("Created event", eventSchema()))
	car.AddResponse(http.StatusBadGateway, apidoc.ErrorResponse("Estimate Failed"))
	doc.AddOperation(BasePath+"/car", http.MethodPost, car)

	shipping := operation("createShippingCarbonEvent", "Estimate and store a shipment", openapi3.Parameters{
		queryParam("weightValue", "Weight in kg", openapi3.NewFloat64Schema()),
		queryParam("distanceValue", "Distance in km", openapi3.NewFloat64Schema()),
		queryParam("transportMethod", "Transport method", openapi3.NewStringSchema().WithEnum("ship", "train", "truck", "plane")),
	})
	shipping.AddResponse(http.StatusOK, apidoc.JSONResponse("Created event", eventSchema()))
	shipping.AddResponse(http.StatusBadGateway, apidoc.ErrorResponse("Estimate Failed"))
	doc.AddOperation(BasePath+"/shipping", http.MethodPost, shipping)

	export := operation("exportCarbonEventsInTimeRange", "Export carbon events of a date range to object storage", rangeParams())
	export.AddResponse(http.StatusOK, apidoc.JSONResponse("Export location", exportSchema()))
	doc.AddOperation(BasePath+"/export", http.MethodPost, export)

	update := operation("updateCarbonEvent", "Update a carbon event", openapi3.Parameters{idParam()})
	update.RequestBody = jsonBody(requestSchema())
	update.AddResponse(http.StatusOK, apidoc.JSONResponse("Updated event", eventSchema()))
	update.AddResponse(http.StatusNotFound, apidoc.ErrorResponse("Not Found"))
	doc.AddOperation(byID, http.MethodPut, update)

	del := operation("deleteCarbonEvent", "Delete a carbon event", openapi3.Parameters{idParam()})
	del.AddResponse(http.StatusNoContent, openapi3.NewResponse().WithDescription("Deleted"))
	doc.AddOperation(byID, http.MethodDelete, del)

	delRange := operation("deleteCarbonEventsInTimeRange", "Delete carbon events in a date range", rangeParams())
	delRange.AddResponse(http.StatusNoContent, openapi3.NewResponse().WithDescription("Deleted"))
	doc.AddOperation(BasePath, http.MethodDelete, delRange)
}
