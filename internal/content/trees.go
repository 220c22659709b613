package content

var treesPage = Page{
	Title: "الأشجار (Trees)",
	Intro: "الشجرة هيكل بيانات هرمي غير خطي يتكون من عقد مترابطة، تبدأ بعقدة جذر واحدة وتتفرع منها عقد أبناء. تُستخدم لتمثيل البيانات ذات العلاقات الهرمية مثل أنظمة الملفات.",
	Sections: []Section{
		{
			Heading: "ما هي الشجرة الثنائية؟",
			Cards: []Card{
				{Icon: "🌳", Title: "المصطلحات الأساسية", Lines: []string{
					"الجذر (Root): العقدة الأولى في الشجرة وليس لها أب.",
					"الأب والابن (Parent/Child): كل عقدة يمكن أن تتفرع منها عقد أبناء.",
					"الورقة (Leaf): عقدة ليس لها أي أبناء.",
					"الارتفاع (Height): عدد الحواف في أطول مسار من الجذر إلى ورقة.",
				}},
				{Icon: "🔀", Title: "الشجرة الثنائية (Binary Tree)", Lines: []string{
					"كل عقدة لها ابنان على الأكثر: ابن أيسر (left) وابن أيمن (right).",
					"كل ابن هو بدوره جذر لشجرة فرعية.",
				}},
			},
		},
		{
			Heading: "التنفيذ باستخدام C++",
			Code: []Code{{
				Title: "تعريف العقدة",
				Source: `struct Node {
    int data;
    Node* left;  // مؤشر للابن الأيسر
    Node* right; // مؤشر للابن الأيمن

    Node(int value) {
        data = value;
        left = NULL;
        right = NULL;
    }
};`,
			}},
		},
		{
			Heading: "اجتياز الشجرة (Tree Traversal)",
			Text:    "الاجتياز هو زيارة جميع عقد الشجرة بترتيب محدد. تختلف الطرق الثلاث في موضع زيارة الجذر بالنسبة للشجرتين الفرعيتين.",
			Code: []Code{
				{
					Title: "Pre-order (جذر، يسار، يمين)",
					Source: `void preOrder(Node* root) {
  if (root == NULL) return;
  cout << root->data << " "; // زيارة الجذر
  preOrder(root->left);      // زيارة الشجرة اليسرى
  preOrder(root->right);     // زيارة الشجرة اليمنى
}`,
				},
				{
					Title: "In-order (يسار، جذر، يمين)",
					Source: `void inOrder(Node* root) {
  if (root == NULL) return;
  inOrder(root->left);       // زيارة الشجرة اليسرى
  cout << root->data << " "; // زيارة الجذر
  inOrder(root->right);      // زيارة الشجرة اليمنى
}`,
				},
				{
					Title: "Post-order (يسار، يمين، جذر)",
					Source: `void postOrder(Node* root) {
  if (root == NULL) return;
  postOrder(root->left);     // زيارة الشجرة اليسرى
  postOrder(root->right);    // زيارة الشجرة اليمنى
  cout << root->data << " "; // زيارة الجذر
}`,
				},
			},
		},
	},
}

var bstPage = Page{
	Title:             "أشجار البحث الثنائية",
	Intro:             "هذا القسم قيد الإنشاء حالياً. سيتم إضافة المحتوى والاختبار قريباً.",
	UnderConstruction: true,
}
