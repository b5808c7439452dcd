package main

import (
	"fmt"
	"strings"

	"github.com/crafty-lang/crafty"
)

// printProgramAST parses source and prints each top-level statement's
// reconstructed source text, one per line, prefixed with "ast> ". It is
// driven by --print-ast and exists primarily to make the parser's shape
// inspectable without a debugger attached.
func printProgramAST(source string) error {
	tokens := crafty.NewScanner(source, nil).Filtered()
	program, err := crafty.NewParser(tokens).Parse()
	if err != nil {
		return err
	}
	for _, stmt := range program.Statements {
		fmt.Println("ast> " + prettyStmt(stmt))
	}
	return nil
}

// prettyStmt and prettyExpr reconstruct valid crafty source from an AST
// node. Re-parsing their output is expected to produce a Program with the
// same shape and literal values as the original (desugared `for` loops
// print as their expanded `while` form, since that is what the parser
// actually built).
func prettyStmt(stmt crafty.Stmt) string {
	switch s := stmt.(type) {
	case *crafty.ExpressionStmt:
		return prettyExpr(s.Expression) + ";"
	case *crafty.PrintStmt:
		return "print " + prettyExpr(s.Expression) + ";"
	case *crafty.VarStmt:
		if s.Initializer == nil {
			return "var " + s.Name.Lexeme + ";"
		}
		return "var " + s.Name.Lexeme + " = " + prettyExpr(s.Initializer) + ";"
	case *crafty.BlockStmt:
		var b strings.Builder
		b.WriteString("{ ")
		for _, inner := range s.Statements {
			b.WriteString(prettyStmt(inner))
			b.WriteString(" ")
		}
		b.WriteString("}")
		return b.String()
	case *crafty.IfStmt:
		out := "if (" + prettyExpr(s.Condition) + ") " + prettyStmt(s.Then)
		if s.Else != nil {
			out += " else " + prettyStmt(s.Else)
		}
		return out
	case *crafty.WhileStmt:
		return "while (" + prettyExpr(s.Condition) + ") " + prettyStmt(s.Body)
	default:
		return fmt.Sprintf("<%T>", stmt)
	}
}

func prettyExpr(expr crafty.Expr) string {
	switch e := expr.(type) {
	case *crafty.BoolLiteral:
		if e.Value {
			return "true"
		}
		return "false"
	case *crafty.IntegerLiteral:
		return e.Text
	case *crafty.FloatLiteral:
		return e.Text
	case *crafty.StringLiteral:
		return e.Text
	case *crafty.Variable:
		return e.Name.Lexeme
	case *crafty.Assign:
		return e.Name.Lexeme + " = " + prettyExpr(e.Value)
	case *crafty.Unary:
		return e.OpToken.Lexeme + prettyExpr(e.Operand)
	case *crafty.Binary:
		return prettyExpr(e.Left) + " " + e.OpToken.Lexeme + " " + prettyExpr(e.Right)
	case *crafty.Logical:
		return prettyExpr(e.Left) + " " + e.OpToken.Lexeme + " " + prettyExpr(e.Right)
	case *crafty.Grouping:
		return "(" + prettyExpr(e.Inner) + ")"
	default:
		return fmt.Sprintf("<%T>", expr)
	}
}
