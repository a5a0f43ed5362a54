/***** File generated by ./internal/cmd/arith_generator. Don't edit it directly. *****/

package arith

func init() {

	// OpAdd: variantFlat
	registerKernel[int8](defaultRegistry, OpAdd, variantFlat, priorityGeneric, flatAddGeneric[int8])
	registerKernel[int16](defaultRegistry, OpAdd, variantFlat, priorityGeneric, flatAddGeneric[int16])
	registerKernel[int32](defaultRegistry, OpAdd, variantFlat, priorityGeneric, flatAddGeneric[int32])
	registerKernel[int64](defaultRegistry, OpAdd, variantFlat, priorityGeneric, flatAddGeneric[int64])
	registerKernel[uint8](defaultRegistry, OpAdd, variantFlat, priorityGeneric, flatAddGeneric[uint8])
	registerKernel[uint16](defaultRegistry, OpAdd, variantFlat, priorityGeneric, flatAddGeneric[uint16])
	registerKernel[uint32](defaultRegistry, OpAdd, variantFlat, priorityGeneric, flatAddGeneric[uint32])
	registerKernel[uint64](defaultRegistry, OpAdd, variantFlat, priorityGeneric, flatAddGeneric[uint64])
	registerKernel[float32](defaultRegistry, OpAdd, variantFlat, priorityGeneric, flatAddGeneric[float32])
	registerKernel[float64](defaultRegistry, OpAdd, variantFlat, priorityGeneric, flatAddGeneric[float64])

	// OpAdd: variantFlatConstant
	registerKernel[int8](defaultRegistry, OpAdd, variantFlatConstant, priorityGeneric, flatConstantAddGeneric[int8])
	registerKernel[int16](defaultRegistry, OpAdd, variantFlatConstant, priorityGeneric, flatConstantAddGeneric[int16])
	registerKernel[int32](defaultRegistry, OpAdd, variantFlatConstant, priorityGeneric, flatConstantAddGeneric[int32])
	registerKernel[int64](defaultRegistry, OpAdd, variantFlatConstant, priorityGeneric, flatConstantAddGeneric[int64])
	registerKernel[uint8](defaultRegistry, OpAdd, variantFlatConstant, priorityGeneric, flatConstantAddGeneric[uint8])
	registerKernel[uint16](defaultRegistry, OpAdd, variantFlatConstant, priorityGeneric, flatConstantAddGeneric[uint16])
	registerKernel[uint32](defaultRegistry, OpAdd, variantFlatConstant, priorityGeneric, flatConstantAddGeneric[uint32])
	registerKernel[uint64](defaultRegistry, OpAdd, variantFlatConstant, priorityGeneric, flatConstantAddGeneric[uint64])
	registerKernel[float32](defaultRegistry, OpAdd, variantFlatConstant, priorityGeneric, flatConstantAddGeneric[float32])
	registerKernel[float64](defaultRegistry, OpAdd, variantFlatConstant, priorityGeneric, flatConstantAddGeneric[float64])

	// OpAdd: variantPlanar
	registerKernel[int8](defaultRegistry, OpAdd, variantPlanar, priorityGeneric, planarAddGeneric[int8])
	registerKernel[int16](defaultRegistry, OpAdd, variantPlanar, priorityGeneric, planarAddGeneric[int16])
	registerKernel[int32](defaultRegistry, OpAdd, variantPlanar, priorityGeneric, planarAddGeneric[int32])
	registerKernel[int64](defaultRegistry, OpAdd, variantPlanar, priorityGeneric, planarAddGeneric[int64])
	registerKernel[uint8](defaultRegistry, OpAdd, variantPlanar, priorityGeneric, planarAddGeneric[uint8])
	registerKernel[uint16](defaultRegistry, OpAdd, variantPlanar, priorityGeneric, planarAddGeneric[uint16])
	registerKernel[uint32](defaultRegistry, OpAdd, variantPlanar, priorityGeneric, planarAddGeneric[uint32])
	registerKernel[uint64](defaultRegistry, OpAdd, variantPlanar, priorityGeneric, planarAddGeneric[uint64])
	registerKernel[float32](defaultRegistry, OpAdd, variantPlanar, priorityGeneric, planarAddGeneric[float32])
	registerKernel[float64](defaultRegistry, OpAdd, variantPlanar, priorityGeneric, planarAddGeneric[float64])

	// OpSubtract: variantFlat
	registerKernel[int8](defaultRegistry, OpSubtract, variantFlat, priorityGeneric, flatSubtractGeneric[int8])
	registerKernel[int16](defaultRegistry, OpSubtract, variantFlat, priorityGeneric, flatSubtractGeneric[int16])
	registerKernel[int32](defaultRegistry, OpSubtract, variantFlat, priorityGeneric, flatSubtractGeneric[int32])
	registerKernel[int64](defaultRegistry, OpSubtract, variantFlat, priorityGeneric, flatSubtractGeneric[int64])
	registerKernel[uint8](defaultRegistry, OpSubtract, variantFlat, priorityGeneric, flatSubtractGeneric[uint8])
	registerKernel[uint16](defaultRegistry, OpSubtract, variantFlat, priorityGeneric, flatSubtractGeneric[uint16])
	registerKernel[uint32](defaultRegistry, OpSubtract, variantFlat, priorityGeneric, flatSubtractGeneric[uint32])
	registerKernel[uint64](defaultRegistry, OpSubtract, variantFlat, priorityGeneric, flatSubtractGeneric[uint64])
	registerKernel[float32](defaultRegistry, OpSubtract, variantFlat, priorityGeneric, flatSubtractGeneric[float32])
	registerKernel[float64](defaultRegistry, OpSubtract, variantFlat, priorityGeneric, flatSubtractGeneric[float64])

	// OpSubtract: variantFlatConstant
	registerKernel[int8](defaultRegistry, OpSubtract, variantFlatConstant, priorityGeneric, flatConstantSubtractGeneric[int8])
	registerKernel[int16](defaultRegistry, OpSubtract, variantFlatConstant, priorityGeneric, flatConstantSubtractGeneric[int16])
	registerKernel[int32](defaultRegistry, OpSubtract, variantFlatConstant, priorityGeneric, flatConstantSubtractGeneric[int32])
	registerKernel[int64](defaultRegistry, OpSubtract, variantFlatConstant, priorityGeneric, flatConstantSubtractGeneric[int64])
	registerKernel[uint8](defaultRegistry, OpSubtract, variantFlatConstant, priorityGeneric, flatConstantSubtractGeneric[uint8])
	registerKernel[uint16](defaultRegistry, OpSubtract, variantFlatConstant, priorityGeneric, flatConstantSubtractGeneric[uint16])
	registerKernel[uint32](defaultRegistry, OpSubtract, variantFlatConstant, priorityGeneric, flatConstantSubtractGeneric[uint32])
	registerKernel[uint64](defaultRegistry, OpSubtract, variantFlatConstant, priorityGeneric, flatConstantSubtractGeneric[uint64])
	registerKernel[float32](defaultRegistry, OpSubtract, variantFlatConstant, priorityGeneric, flatConstantSubtractGeneric[float32])
	registerKernel[float64](defaultRegistry, OpSubtract, variantFlatConstant, priorityGeneric, flatConstantSubtractGeneric[float64])

	// OpSubtract: variantPlanar
	registerKernel[int8](defaultRegistry, OpSubtract, variantPlanar, priorityGeneric, planarSubtractGeneric[int8])
	registerKernel[int16](defaultRegistry, OpSubtract, variantPlanar, priorityGeneric, planarSubtractGeneric[int16])
	registerKernel[int32](defaultRegistry, OpSubtract, variantPlanar, priorityGeneric, planarSubtractGeneric[int32])
	registerKernel[int64](defaultRegistry, OpSubtract, variantPlanar, priorityGeneric, planarSubtractGeneric[int64])
	registerKernel[uint8](defaultRegistry, OpSubtract, variantPlanar, priorityGeneric, planarSubtractGeneric[uint8])
	registerKernel[uint16](defaultRegistry, OpSubtract, variantPlanar, priorityGeneric, planarSubtractGeneric[uint16])
	registerKernel[uint32](defaultRegistry, OpSubtract, variantPlanar, priorityGeneric, planarSubtractGeneric[uint32])
	registerKernel[uint64](defaultRegistry, OpSubtract, variantPlanar, priorityGeneric, planarSubtractGeneric[uint64])
	registerKernel[float32](defaultRegistry, OpSubtract, variantPlanar, priorityGeneric, planarSubtractGeneric[float32])
	registerKernel[float64](defaultRegistry, OpSubtract, variantPlanar, priorityGeneric, planarSubtractGeneric[float64])

	// OpMultiply: variantFlat
	registerKernel[int8](defaultRegistry, OpMultiply, variantFlat, priorityGeneric, flatMultiplyGeneric[int8])
	registerKernel[int16](defaultRegistry, OpMultiply, variantFlat, priorityGeneric, flatMultiplyGeneric[int16])
	registerKernel[int32](defaultRegistry, OpMultiply, variantFlat, priorityGeneric, flatMultiplyGeneric[int32])
	registerKernel[int64](defaultRegistry, OpMultiply, variantFlat, priorityGeneric, flatMultiplyGeneric[int64])
	registerKernel[uint8](defaultRegistry, OpMultiply, variantFlat, priorityGeneric, flatMultiplyGeneric[uint8])
	registerKernel[uint16](defaultRegistry, OpMultiply, variantFlat, priorityGeneric, flatMultiplyGeneric[uint16])
	registerKernel[uint32](defaultRegistry, OpMultiply, variantFlat, priorityGeneric, flatMultiplyGeneric[uint32])
	registerKernel[uint64](defaultRegistry, OpMultiply, variantFlat, priorityGeneric, flatMultiplyGeneric[uint64])
	registerKernel[float32](defaultRegistry, OpMultiply, variantFlat, priorityGeneric, flatMultiplyGeneric[float32])
	registerKernel[float64](defaultRegistry, OpMultiply, variantFlat, priorityGeneric, flatMultiplyGeneric[float64])

	// OpMultiply: variantFlatConstant
	registerKernel[int8](defaultRegistry, OpMultiply, variantFlatConstant, priorityGeneric, flatConstantMultiplyGeneric[int8])
	registerKernel[int16](defaultRegistry, OpMultiply, variantFlatConstant, priorityGeneric, flatConstantMultiplyGeneric[int16])
	registerKernel[int32](defaultRegistry, OpMultiply, variantFlatConstant, priorityGeneric, flatConstantMultiplyGeneric[int32])
	registerKernel[int64](defaultRegistry, OpMultiply, variantFlatConstant, priorityGeneric, flatConstantMultiplyGeneric[int64])
	registerKernel[uint8](defaultRegistry, OpMultiply, variantFlatConstant, priorityGeneric, flatConstantMultiplyGeneric[uint8])
	registerKernel[uint16](defaultRegistry, OpMultiply, variantFlatConstant, priorityGeneric, flatConstantMultiplyGeneric[uint16])
	registerKernel[uint32](defaultRegistry, OpMultiply, variantFlatConstant, priorityGeneric, flatConstantMultiplyGeneric[uint32])
	registerKernel[uint64](defaultRegistry, OpMultiply, variantFlatConstant, priorityGeneric, flatConstantMultiplyGeneric[uint64])
	registerKernel[float32](defaultRegistry, OpMultiply, variantFlatConstant, priorityGeneric, flatConstantMultiplyGeneric[float32])
	registerKernel[float64](defaultRegistry, OpMultiply, variantFlatConstant, priorityGeneric, flatConstantMultiplyGeneric[float64])

	// OpMultiply: variantPlanar
	registerKernel[int8](defaultRegistry, OpMultiply, variantPlanar, priorityGeneric, planarMultiplyGeneric[int8])
	registerKernel[int16](defaultRegistry, OpMultiply, variantPlanar, priorityGeneric, planarMultiplyGeneric[int16])
	registerKernel[int32](defaultRegistry, OpMultiply, variantPlanar, priorityGeneric, planarMultiplyGeneric[int32])
	registerKernel[int64](defaultRegistry, OpMultiply, variantPlanar, priorityGeneric, planarMultiplyGeneric[int64])
	registerKernel[uint8](defaultRegistry, OpMultiply, variantPlanar, priorityGeneric, planarMultiplyGeneric[uint8])
	registerKernel[uint16](defaultRegistry, OpMultiply, variantPlanar, priorityGeneric, planarMultiplyGeneric[uint16])
	registerKernel[uint32](defaultRegistry, OpMultiply, variantPlanar, priorityGeneric, planarMultiplyGeneric[uint32])
	registerKernel[uint64](defaultRegistry, OpMultiply, variantPlanar, priorityGeneric, planarMultiplyGeneric[uint64])
	registerKernel[float32](defaultRegistry, OpMultiply, variantPlanar, priorityGeneric, planarMultiplyGeneric[float32])
	registerKernel[float64](defaultRegistry, OpMultiply, variantPlanar, priorityGeneric, planarMultiplyGeneric[float64])

	// OpDivide: variantFlat
	registerKernel[int8](defaultRegistry, OpDivide, variantFlat, priorityGeneric, flatDivideGeneric[int8])
	registerKernel[int16](defaultRegistry, OpDivide, variantFlat, priorityGeneric, flatDivideGeneric[int16])
	registerKernel[int32](defaultRegistry, OpDivide, variantFlat, priorityGeneric, flatDivideGeneric[int32])
	registerKernel[int64](defaultRegistry, OpDivide, variantFlat, priorityGeneric, flatDivideGeneric[int64])
	registerKernel[uint8](defaultRegistry, OpDivide, variantFlat, priorityGeneric, flatDivideGeneric[uint8])
	registerKernel[uint16](defaultRegistry, OpDivide, variantFlat, priorityGeneric, flatDivideGeneric[uint16])
	registerKernel[uint32](defaultRegistry, OpDivide, variantFlat, priorityGeneric, flatDivideGeneric[uint32])
	registerKernel[uint64](defaultRegistry, OpDivide, variantFlat, priorityGeneric, flatDivideGeneric[uint64])
	registerKernel[float32](defaultRegistry, OpDivide, variantFlat, priorityGeneric, flatDivideGeneric[float32])
	registerKernel[float64](defaultRegistry, OpDivide, variantFlat, priorityGeneric, flatDivideGeneric[float64])

	// OpDivide: variantFlatConstant
	registerKernel[int8](defaultRegistry, OpDivide, variantFlatConstant, priorityGeneric, flatConstantDivideGeneric[int8])
	registerKernel[int16](defaultRegistry, OpDivide, variantFlatConstant, priorityGeneric, flatConstantDivideGeneric[int16])
	registerKernel[int32](defaultRegistry, OpDivide, variantFlatConstant, priorityGeneric, flatConstantDivideGeneric[int32])
	registerKernel[int64](defaultRegistry, OpDivide, variantFlatConstant, priorityGeneric, flatConstantDivideGeneric[int64])
	registerKernel[uint8](defaultRegistry, OpDivide, variantFlatConstant, priorityGeneric, flatConstantDivideGeneric[uint8])
	registerKernel[uint16](defaultRegistry, OpDivide, variantFlatConstant, priorityGeneric, flatConstantDivideGeneric[uint16])
	registerKernel[uint32](defaultRegistry, OpDivide, variantFlatConstant, priorityGeneric, flatConstantDivideGeneric[uint32])
	registerKernel[uint64](defaultRegistry, OpDivide, variantFlatConstant, priorityGeneric, flatConstantDivideGeneric[uint64])
	registerKernel[float32](defaultRegistry, OpDivide, variantFlatConstant, priorityGeneric, flatConstantDivideGeneric[float32])
	registerKernel[float64](defaultRegistry, OpDivide, variantFlatConstant, priorityGeneric, flatConstantDivideGeneric[float64])

	// OpDivide: variantPlanar
	registerKernel[int8](defaultRegistry, OpDivide, variantPlanar, priorityGeneric, planarDivideGeneric[int8])
	registerKernel[int16](defaultRegistry, OpDivide, variantPlanar, priorityGeneric, planarDivideGeneric[int16])
	registerKernel[int32](defaultRegistry, OpDivide, variantPlanar, priorityGeneric, planarDivideGeneric[int32])
	registerKernel[int64](defaultRegistry, OpDivide, variantPlanar, priorityGeneric, planarDivideGeneric[int64])
	registerKernel[uint8](defaultRegistry, OpDivide, variantPlanar, priorityGeneric, planarDivideGeneric[uint8])
	registerKernel[uint16](defaultRegistry, OpDivide, variantPlanar, priorityGeneric, planarDivideGeneric[uint16])
	registerKernel[uint32](defaultRegistry, OpDivide, variantPlanar, priorityGeneric, planarDivideGeneric[uint32])
	registerKernel[uint64](defaultRegistry, OpDivide, variantPlanar, priorityGeneric, planarDivideGeneric[uint64])
	registerKernel[float32](defaultRegistry, OpDivide, variantPlanar, priorityGeneric, planarDivideGeneric[float32])
	registerKernel[float64](defaultRegistry, OpDivide, variantPlanar, priorityGeneric, planarDivideGeneric[float64])
}
