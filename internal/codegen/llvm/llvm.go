package llvm

import (
	"strconv"

	"github.com/HicaroD/sexpc/internal/cast"
	"github.com/HicaroD/sexpc/internal/diagnostics"
	"tinygo.org/x/go-llvm"
)

const entrypoint = "main"

type llvmCodegen struct {
	context llvm.Context
	module  llvm.Module
	builder llvm.Builder

	// every callee is declared as i64 (...) so calls of any arity agree
	calleeTy llvm.Type
}

func NewCG(moduleName string) *llvmCodegen {
	context := llvm.NewContext()
	module := context.NewModule(moduleName)
	builder := context.NewBuilder()

	defaultTargetTriple := llvm.DefaultTargetTriple()
	module.SetTarget(defaultTargetTriple)

	return &llvmCodegen{
		context:  context,
		module:   module,
		builder:  builder,
		calleeTy: llvm.FunctionType(context.Int64Type(), nil, true),
	}
}

// Generate lowers program and returns the module as textual IR. Statements
// run in order inside main, which returns 0.
func Generate(moduleName string, program *cast.Program) (string, error) {
	c := NewCG(moduleName)
	defer c.Dispose()

	err := c.Generate(program)
	if err != nil {
		return "", err
	}
	return c.module.String(), nil
}

func (c *llvmCodegen) Dispose() {
	c.builder.Dispose()
	c.module.Dispose()
	c.context.Dispose()
}

func (c *llvmCodegen) Generate(program *cast.Program) error {
	mainTy := llvm.FunctionType(c.context.Int32Type(), nil, false)
	mainFn := llvm.AddFunction(c.module, entrypoint, mainTy)
	entry := c.context.AddBasicBlock(mainFn, "entry")
	c.builder.SetInsertPointAtEnd(entry)

	for _, stmt := range program.Body {
		err := c.generateStmt(stmt)
		if err != nil {
			return err
		}
	}
	c.builder.CreateRet(llvm.ConstInt(c.context.Int32Type(), 0, false))

	err := llvm.VerifyModule(c.module, llvm.ReturnStatusAction)
	if err != nil {
		return diagnostics.NewInternal(diagnostics.CODEGEN_ERROR, "invalid module: %s", err)
	}
	return nil
}

func (c *llvmCodegen) generateStmt(stmt *cast.Node) error {
	if stmt == nil || stmt.Kind != cast.KIND_EXPR_STMT {
		return diagnostics.NewInternal(diagnostics.CODEGEN_ERROR, "expected statement, got %v", stmt)
	}
	exprStmt, ok := stmt.Node.(*cast.ExprStmt)
	if !ok {
		return mismatch(stmt)
	}
	_, err := c.getExpr(exprStmt.Expr)
	return err
}

func (c *llvmCodegen) getExpr(expr *cast.Node) (llvm.Value, error) {
	if expr == nil {
		return llvm.Value{}, diagnostics.NewInternal(diagnostics.CODEGEN_ERROR, "nil expression")
	}

	switch expr.Kind {
	case cast.KIND_NUMBER_LITERAL:
		number, ok := expr.Node.(*cast.NumberLiteral)
		if !ok {
			return llvm.Value{}, mismatch(expr)
		}
		return c.getNumber(number)
	case cast.KIND_CALL_EXPR:
		call, ok := expr.Node.(*cast.CallExpr)
		if !ok {
			return llvm.Value{}, mismatch(expr)
		}
		return c.generateCall(call)
	default:
		return llvm.Value{}, diagnostics.NewInternal(diagnostics.CODEGEN_ERROR, "unexpected expression %s", expr.Kind)
	}
}

func (c *llvmCodegen) getNumber(number *cast.NumberLiteral) (llvm.Value, error) {
	val, err := strconv.ParseUint(number.Value, 10, 64)
	if err != nil {
		return llvm.Value{}, diagnostics.NewInternal(
			diagnostics.CODEGEN_ERROR,
			"number %s does not fit in 64 bits",
			number.Value,
		)
	}
	return llvm.ConstInt(c.context.Int64Type(), val, false), nil
}

func (c *llvmCodegen) generateCall(call *cast.CallExpr) (llvm.Value, error) {
	if call.Callee == nil {
		return llvm.Value{}, diagnostics.NewInternal(diagnostics.CODEGEN_ERROR, "call without callee")
	}

	fn, err := c.getCallee(call.Callee.Name)
	if err != nil {
		return llvm.Value{}, err
	}

	args := make([]llvm.Value, 0, len(call.Args))
	for _, arg := range call.Args {
		value, err := c.getExpr(arg)
		if err != nil {
			return llvm.Value{}, err
		}
		args = append(args, value)
	}
	return c.builder.CreateCall(c.calleeTy, fn, args, ""), nil
}

func (c *llvmCodegen) getCallee(name string) (llvm.Value, error) {
	if name == entrypoint {
		return llvm.Value{}, diagnostics.NewInternal(
			diagnostics.CODEGEN_ERROR,
			"%q is reserved for the program entrypoint",
			name,
		)
	}
	fn := c.module.NamedFunction(name)
	if fn.IsNil() {
		fn = llvm.AddFunction(c.module, name, c.calleeTy)
	}
	return fn, nil
}

func mismatch(node *cast.Node) error {
	return diagnostics.NewInternal(diagnostics.CODEGEN_ERROR, "%s node holds %T", node.Kind, node.Node)
}
